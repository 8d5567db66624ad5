package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
	"github.com/devtoolkit/devtoolkit-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles GET /tools/password/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerateQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseGenerateQuery reads length and the include_* flags. Absent parameters stay nil.
func parseGenerateQuery(q url.Values) (model.GenerateRequest, error) {
	var req model.GenerateRequest

	if q.Has("length") {
		n, err := strconv.Atoi(strings.TrimSpace(q.Get("length")))
		if err != nil {
			return req, &model.ValidationError{Field: "length", Reason: "must be an integer"}
		}
		req.Length = &n
	}

	flags := []struct {
		name string
		dst  **bool
	}{
		{"include_symbols", &req.Symbols},
		{"include_numbers", &req.Numbers},
		{"include_uppercase", &req.Uppercase},
		{"include_lowercase", &req.Lowercase},
	}
	for _, f := range flags {
		if !q.Has(f.name) {
			continue
		}
		b, ok := parseQueryBool(q.Get(f.name))
		if !ok {
			return req, &model.ValidationError{Field: f.name, Reason: "must be a boolean"}
		}
		*f.dst = &b
	}

	return req, nil
}

func parseQueryBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	}
	return false, false
}
