package httpapi

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	// AuthEnabled puts every /api route except login behind JWTAuth.
	AuthEnabled bool
	Tokens      TokenParser
	Metrics     *metrics.MetricsManager
}

func NewRouter(h *Handler, cfg RouterConfig, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(chimw.RealIP)
	r.Use(Logger(log.Named("HTTP")))
	r.Use(Metrics(cfg.Metrics))
	r.Use(Tracing)
	r.Use(chimw.Recoverer)

	r.Get("/health", h.Health)
	r.Post("/api/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		if cfg.AuthEnabled {
			r.Use(JWTAuth(cfg.Tokens, log))
		}

		r.Get("/api/dashboard", h.Dashboard)
		r.Get("/api/analytics", h.Analytics)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
			r.Post("/{id}/suspend", h.SuspendUser)
			r.Post("/{id}/activate", h.ActivateUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/api/properties", func(r chi.Router) {
			r.Get("/", h.ListProperties)
			r.Get("/pending", h.PendingProperties)
			r.Get("/{id}", h.GetProperty)
			r.Get("/{id}/gallery", h.PropertyGallery)
			r.Post("/{id}/approve", h.ApproveProperty)
			r.Post("/{id}/reject", h.RejectProperty)
			r.Delete("/{id}", h.DeleteProperty)
		})

		r.Get("/api/transactions", h.ListTransactions)
		r.Get("/api/chats", h.ListChats)
		r.Get("/api/chats/{id}", h.GetChat)

		r.Get("/api/settings", h.GetSettings)
		r.Put("/api/settings/{section}", h.SaveSettings)
	})

	return r
}
