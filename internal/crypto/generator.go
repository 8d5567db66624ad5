package crypto

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 12
)

var (
	ErrLengthOutOfRange = errors.New("password length must be between 4 and 128")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 12 characters with every character class enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Pool returns the characters a password may be drawn from, in the order
// lowercase, uppercase, digits, symbols.
func (o GeneratorOptions) Pool() string {
	var pool string
	if o.Lowercase {
		pool += lowercaseChars
	}
	if o.Uppercase {
		pool += uppercaseChars
	}
	if o.Numbers {
		pool += numberChars
	}
	if o.Symbols {
		pool += symbolChars
	}
	return pool
}

// Generate draws opts.Length characters uniformly, with replacement, from the
// selected pool. Nothing guarantees that every selected class shows up.
func Generate(src io.Reader, opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrLengthOutOfRange
	}

	pool := opts.Pool()
	if pool == "" {
		return "", ErrNoCharacterTypes
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset using src.
func randChar(src io.Reader, charset string) (byte, error) {
	n, err := rand.Int(src, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
