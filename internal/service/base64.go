package service

import (
	"encoding/base64"
	"errors"
	"unicode/utf8"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
)

var (
	ErrEncodeBase64 = errors.New("Failed to encode string to Base64.")
	ErrDecodeBase64 = errors.New("Failed to decode Base64 string.")
)

// Base64Service converts between UTF-8 text and standard padded Base64.
type Base64Service struct{}

func NewBase64Service() *Base64Service {
	return &Base64Service{}
}

// Encode returns the Base64 form of the UTF-8 bytes of req.Content.
func (s *Base64Service) Encode(req model.EncodeRequest) (model.EncodeResponse, error) {
	if err := req.Validate(); err != nil {
		return model.EncodeResponse{}, err
	}
	if !utf8.ValidString(*req.Content) {
		return model.EncodeResponse{}, ErrEncodeBase64
	}

	return model.EncodeResponse{
		Encoded: base64.StdEncoding.EncodeToString([]byte(*req.Content)),
	}, nil
}

// Decode reverses Encode. Malformed Base64 and payloads that are not valid
// UTF-8 fail the same way.
func (s *Base64Service) Decode(req model.DecodeRequest) (model.DecodeResponse, error) {
	if err := req.Validate(); err != nil {
		return model.DecodeResponse{}, err
	}

	data, err := base64.StdEncoding.DecodeString(*req.Encoded)
	if err != nil || !utf8.Valid(data) {
		return model.DecodeResponse{}, ErrDecodeBase64
	}

	return model.DecodeResponse{Decoded: string(data)}, nil
}
