package handler

import (
	"io"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/devtoolkit/devtoolkit-go/internal/middleware"
	"github.com/devtoolkit/devtoolkit-go/internal/service"
)

// RouterOptions carries what NewRouter needs from configuration.
type RouterOptions struct {
	// Random feeds the UUID and password generators.
	Random io.Reader
	// MaxBodyBytes caps every request body.
	MaxBodyBytes int64
}

// NewRouter wires every tool route onto a chi router.
func NewRouter(opts RouterOptions) chi.Router {
	jsonHandler := NewJSONHandler(service.NewJSONService())
	uuidHandler := NewUUIDHandler(service.NewUUIDService(opts.Random))
	base64Handler := NewBase64Handler(service.NewBase64Service())
	timeHandler := NewTimeHandler(service.NewTimeService())
	genHandler := NewGeneratorHandler(service.NewGeneratorService(opts.Random))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestSize(opts.MaxBodyBytes))
	r.Use(chimw.Compress(5, "application/json"))

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/", HandleRoot)
	r.Get("/health", HandleHealth)

	r.Route("/tools", func(r chi.Router) {
		r.Post("/json/prettify", jsonHandler.HandlePrettify)
		r.Get("/uuid/generate", uuidHandler.HandleGenerate)
		r.Post("/base64/encode", base64Handler.HandleEncode)
		r.Post("/base64/decode", base64Handler.HandleDecode)
		r.Post("/time/convert", timeHandler.HandleConvert)
		r.Get("/password/generate", genHandler.HandleGenerate)
	})

	return r
}
