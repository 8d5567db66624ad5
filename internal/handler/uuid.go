package handler

import (
	"net/http"

	"github.com/devtoolkit/devtoolkit-go/internal/service"
)

// UUIDHandler handles HTTP requests for UUID generation.
type UUIDHandler struct {
	service *service.UUIDService
}

// NewUUIDHandler creates a new UUIDHandler.
func NewUUIDHandler(svc *service.UUIDService) *UUIDHandler {
	return &UUIDHandler{service: svc}
}

// HandleGenerate handles GET /tools/uuid/generate requests.
func (h *UUIDHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Generate()
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
