package service

import (
	cryptorand "crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(cryptorand.Reader)
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Password, 12)
}

func TestGenerate_CustomLength(t *testing.T) {
	svc := newTestGeneratorService()
	for _, length := range []int{4, 20, 128} {
		resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(length)})
		require.NoError(t, err)
		assert.Len(t, resp.Password, length)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    intPtr(32),
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Password, 32)
	for _, c := range resp.Password {
		assert.True(t, (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'),
			"unexpected character %q in password with only uppercase+lowercase", c)
	}
}

func TestGenerate_WithoutSymbols(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(64), Symbols: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(resp.Password, "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"))
}

func TestGenerate_LengthOutOfRange(t *testing.T) {
	svc := newTestGeneratorService()
	for _, length := range []int{0, 3, 129, 200} {
		_, err := svc.Generate(model.GenerateRequest{Length: intPtr(length)})
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr, "length %d", length)
		assert.Equal(t, "length", verr.Field)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    intPtr(16),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	require.ErrorIs(t, err, ErrNoCharacterSets)
	assert.Equal(t, "At least one character set must be selected.", err.Error())
}
