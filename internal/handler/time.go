package handler

import (
	"errors"
	"net/http"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
	"github.com/devtoolkit/devtoolkit-go/internal/service"
)

// TimeHandler handles HTTP requests for timestamp conversion.
type TimeHandler struct {
	service *service.TimeService
}

// NewTimeHandler creates a new TimeHandler.
func NewTimeHandler(svc *service.TimeService) *TimeHandler {
	return &TimeHandler{service: svc}
}

// HandleConvert handles POST /tools/time/convert requests.
func (h *TimeHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var req model.TimeConvertRequest
	if err := decodeJSON(r, &req); err != nil {
		// A timestamp that is not a number fails decoding; report it like any other bad value.
		if errors.Is(err, errInvalidBody) {
			err = service.ErrInvalidTimeInput
		}
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Convert(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
