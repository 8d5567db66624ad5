package service

import (
	"io"

	"github.com/devtoolkit/devtoolkit-go/internal/crypto"
	"github.com/devtoolkit/devtoolkit-go/internal/model"
)

// UUIDService generates version 4 UUIDs.
type UUIDService struct {
	random io.Reader
}

func NewUUIDService(random io.Reader) *UUIDService {
	return &UUIDService{random: random}
}

// Generate returns a fresh random UUID.
func (s *UUIDService) Generate() (model.UUIDResponse, error) {
	id, err := crypto.NewUUID(s.random)
	if err != nil {
		return model.UUIDResponse{}, err
	}
	return model.UUIDResponse{UUID: id}, nil
}
