package model

import "fmt"

// ValidationError reports a request that is well-formed on the wire but
// does not satisfy an endpoint's input contract.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the body of the root route.
type MessageResponse struct {
	Message string `json:"message"`
}
