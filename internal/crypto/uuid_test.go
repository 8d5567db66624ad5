package crypto

import (
	"bytes"
	cryptorand "crypto/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidV4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewUUID(t *testing.T) {
	first, err := NewUUID(cryptorand.Reader)
	require.NoError(t, err)
	second, err := NewUUID(cryptorand.Reader)
	require.NoError(t, err)

	assert.Len(t, first, 36)
	assert.Regexp(t, uuidV4Pattern, first)
	assert.Regexp(t, uuidV4Pattern, second)
	assert.NotEqual(t, first, second)
}

func TestNewUUIDSetsVersionAndVariant(t *testing.T) {
	// All-ones input: only the version and variant bits may change.
	id, err := NewUUID(bytes.NewReader(bytes.Repeat([]byte{0xff}, 16)))
	require.NoError(t, err)
	assert.Equal(t, "ffffffff-ffff-4fff-bfff-ffffffffffff", id)
}

func TestNewUUIDShortSource(t *testing.T) {
	_, err := NewUUID(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestNewUUIDMathSource(t *testing.T) {
	src, err := NewSource(SourceMath)
	require.NoError(t, err)

	id, err := NewUUID(src)
	require.NoError(t, err)
	assert.Regexp(t, uuidV4Pattern, id)
}
