package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds the Chi router. The health endpoint is unauthenticated;
// inspire and feedback require bearer auth. Rate limiting applies globally
// per IP.
func NewRouter(handlers *Handlers, token string, ratePerMinute int, db, redis Pinger, log *slog.Logger) *chi.Mux {
	if ratePerMinute <= 0 {
		ratePerMinute = 60
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(ratePerMinute, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redis, log))

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(token))
		r.Post("/api/v1/inspire", handlers.Inspire)
		r.Post("/api/v1/feedback", handlers.Feedback)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
