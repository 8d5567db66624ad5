package model

// UUIDResponse carries one version 4 UUID in canonical form.
type UUIDResponse struct {
	UUID string `json:"uuid"`
}
