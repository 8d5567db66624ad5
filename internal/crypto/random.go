package crypto

import (
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// Random source names accepted by NewSource.
const (
	SourceCrypto = "crypto"
	SourceMath   = "math"
)

var ErrUnknownSource = errors.New("unknown random source")

// NewSource returns the random byte stream used by the generators.
//
// "crypto" is backed by crypto/rand and is suitable for secrets. "math" is an
// XChaCha20 key stream seeded once from crypto/rand; it is uniformly
// distributed but carries no security claim.
func NewSource(name string) (io.Reader, error) {
	switch name {
	case "", SourceCrypto:
		return cryptorand.Reader, nil
	case SourceMath:
		stream, err := newKeyStream()
		if err != nil {
			return nil, fmt.Errorf("seeding math source: %w", err)
		}
		return &lockedReader{r: stream}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}

// keyStream reads raw cipher output: XORKeyStream over a zeroed buffer.
type keyStream struct {
	c *chacha20.Cipher
}

func newKeyStream() (*keyStream, error) {
	seed := make([]byte, chacha20.KeySize+chacha20.NonceSizeX)
	if _, err := cryptorand.Read(seed); err != nil {
		return nil, err
	}
	c, err := chacha20.NewUnauthenticatedCipher(seed[:chacha20.KeySize], seed[chacha20.KeySize:])
	if err != nil {
		return nil, err
	}
	return &keyStream{c: c}, nil
}

func (s *keyStream) Read(p []byte) (int, error) {
	clear(p)
	s.c.XORKeyStream(p, p)
	return len(p), nil
}

// lockedReader serializes reads; the cipher is not safe for concurrent use.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
