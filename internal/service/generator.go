package service

import (
	"errors"
	"io"

	"github.com/devtoolkit/devtoolkit-go/internal/crypto"
	"github.com/devtoolkit/devtoolkit-go/internal/model"
)

var ErrNoCharacterSets = errors.New("At least one character set must be selected.")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	random io.Reader
}

// NewGeneratorService creates a GeneratorService drawing from random.
func NewGeneratorService(random io.Reader) *GeneratorService {
	return &GeneratorService{random: random}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return model.GenerateResponse{}, err
	}

	opts := crypto.GeneratorOptions{
		Length:    intOrDefault(req.Length, crypto.DefaultLength),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	password, err := crypto.Generate(s.random, opts)
	if err != nil {
		if errors.Is(err, crypto.ErrNoCharacterTypes) {
			return model.GenerateResponse{}, ErrNoCharacterSets
		}
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{Password: password}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
