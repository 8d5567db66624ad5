package handler

import (
	"net/http"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
	"github.com/devtoolkit/devtoolkit-go/internal/service"
)

// JSONHandler handles HTTP requests for JSON formatting.
type JSONHandler struct {
	service *service.JSONService
}

// NewJSONHandler creates a new JSONHandler.
func NewJSONHandler(svc *service.JSONService) *JSONHandler {
	return &JSONHandler{service: svc}
}

// HandlePrettify handles POST /tools/json/prettify requests.
func (h *JSONHandler) HandlePrettify(w http.ResponseWriter, r *http.Request) {
	var req model.PrettifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Prettify(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
