package model

import (
	"fmt"

	"github.com/devtoolkit/devtoolkit-go/internal/crypto"
)

// GenerateRequest represents a password generation request built from query parameters.
// Pointer fields distinguish between missing (nil -> default) and an explicit value.
type GenerateRequest struct {
	Length    *int
	Symbols   *bool
	Numbers   *bool
	Uppercase *bool
	Lowercase *bool
}

// Validate checks that an explicit length falls within the generator bounds.
func (r GenerateRequest) Validate() error {
	if r.Length != nil && (*r.Length < crypto.MinLength || *r.Length > crypto.MaxLength) {
		return &ValidationError{
			Field:  "length",
			Reason: fmt.Sprintf("must be an integer between %d and %d", crypto.MinLength, crypto.MaxLength),
		}
	}
	return nil
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
}
