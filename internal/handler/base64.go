package handler

import (
	"net/http"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
	"github.com/devtoolkit/devtoolkit-go/internal/service"
)

// Base64Handler handles HTTP requests for Base64 encoding and decoding.
type Base64Handler struct {
	service *service.Base64Service
}

// NewBase64Handler creates a new Base64Handler.
func NewBase64Handler(svc *service.Base64Service) *Base64Handler {
	return &Base64Handler{service: svc}
}

// HandleEncode handles POST /tools/base64/encode requests.
func (h *Base64Handler) HandleEncode(w http.ResponseWriter, r *http.Request) {
	var req model.EncodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Encode(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDecode handles POST /tools/base64/decode requests.
func (h *Base64Handler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	var req model.DecodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Decode(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
