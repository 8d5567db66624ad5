package model

// EncodeRequest carries text to Base64-encode.
type EncodeRequest struct {
	Content *string `json:"content"`
}

// Validate reports a missing content field.
func (r EncodeRequest) Validate() error {
	if r.Content == nil {
		return &ValidationError{Field: "content", Reason: "is required"}
	}
	return nil
}

// EncodeResponse carries the padded Base64 form of the input.
type EncodeResponse struct {
	Encoded string `json:"encoded"`
}

// DecodeRequest carries a Base64 string to decode.
type DecodeRequest struct {
	Encoded *string `json:"encoded"`
}

// Validate reports a missing encoded field.
func (r DecodeRequest) Validate() error {
	if r.Encoded == nil {
		return &ValidationError{Field: "encoded", Reason: "is required"}
	}
	return nil
}

// DecodeResponse carries the decoded UTF-8 text.
type DecodeResponse struct {
	Decoded string `json:"decoded"`
}
