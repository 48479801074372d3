package app

import (
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Gzip(logger))

	// Routes
	// NotFound задается до Route, чтобы подроутер /api его унаследовал
	r.NotFound(h.NotFound)
	r.Get("/ping", h.Ping)
	r.Route("/api", func(r chi.Router) {
		r.Post("/shorten", h.CreateMapping)
		r.Get("/urls", h.ListMappings)
	})
	r.Get("/{alias}", h.Redirect)

	return r
}
