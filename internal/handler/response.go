package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/devtoolkit/devtoolkit-go/internal/logger"
	"github.com/devtoolkit/devtoolkit-go/internal/model"
	"github.com/devtoolkit/devtoolkit-go/internal/service"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errBodyTooLarge = errors.New("request body too large")
	errInvalidBody  = errors.New("invalid request body")
)

// decodeJSON reads the whole (size-capped) body and unmarshals it into v.
func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return errInvalidBody
	}
	if err := json.Unmarshal(body, v); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))
		return errInvalidBody
	}
	return nil
}

// writeError maps err to a status code and a {"detail": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse(verr.Error()))
	case errors.Is(err, errBodyTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(err.Error()))
	case isClientError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		logger.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func isClientError(err error) bool {
	return errors.Is(err, errInvalidBody) ||
		errors.Is(err, service.ErrInvalidJSON) ||
		errors.Is(err, service.ErrEncodeBase64) ||
		errors.Is(err, service.ErrDecodeBase64) ||
		errors.Is(err, service.ErrMissingTimeInput) ||
		errors.Is(err, service.ErrInvalidTimeInput) ||
		errors.Is(err, service.ErrNoCharacterSets)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
	}
}

func errorResponse(msg string) model.ErrorResponse {
	return model.ErrorResponse{Detail: msg}
}
