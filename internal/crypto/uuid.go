package crypto

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// NewUUID returns a version 4 UUID in canonical lowercase form, built from
// 16 bytes of src.
func NewUUID(src io.Reader) (string, error) {
	id, err := uuid.NewRandomFromReader(src)
	if err != nil {
		return "", fmt.Errorf("generating uuid: %w", err)
	}
	return id.String(), nil
}
