package model

// PrettifyRequest carries raw JSON text to re-indent.
type PrettifyRequest struct {
	Content *string `json:"content"`
}

// Validate reports a missing content field.
func (r PrettifyRequest) Validate() error {
	if r.Content == nil {
		return &ValidationError{Field: "content", Reason: "is required"}
	}
	return nil
}

// PrettifyResponse carries the re-indented document.
type PrettifyResponse struct {
	Prettified string `json:"prettified"`
}
