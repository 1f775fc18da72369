package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"budget-tracker/internal/adapter/session"
	"budget-tracker/internal/core/calc"
	"budget-tracker/internal/core/port"
	"budget-tracker/internal/monitoring"
)

// Deps are the collaborators of the HTTP adapter.
type Deps struct {
	Accounts  port.AccountUseCase
	Campaigns port.CampaignUseCase
	Sessions  *session.Manager
	Metrics   *monitoring.Metrics
	Logger    *slog.Logger

	// AlertThreshold is the budget usage percentage flagged on the
	// dashboard. Zero means calc.DefaultAlertThreshold.
	AlertThreshold float64

	// Ping reports storage health for /healthz. Nil always reports healthy.
	Ping func(ctx context.Context) error
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router; the login gate is a
// middleware stage on the protected route group.
type Handler struct {
	accounts       port.AccountUseCase
	campaigns      port.CampaignUseCase
	sessions       *session.Manager
	metrics        *monitoring.Metrics
	logger         *slog.Logger
	alertThreshold float64
	ping           func(ctx context.Context) error
	router         chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		accounts:       d.Accounts,
		campaigns:      d.Campaigns,
		sessions:       d.Sessions,
		metrics:        d.Metrics,
		logger:         d.Logger,
		alertThreshold: d.AlertThreshold,
		ping:           d.Ping,
	}
	if h.alertThreshold == 0 {
		h.alertThreshold = calc.DefaultAlertThreshold
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", h.metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.sessions.Middleware)

		r.Get("/", h.handleIndex)
		r.Get("/register", h.handleRegisterForm)
		r.Post("/register", h.handleRegister)
		r.Get("/login", h.handleLoginForm)
		r.Post("/login", h.handleLogin)
		r.Get("/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireLogin)

			r.Get("/dashboard", h.handleDashboard)
			r.Route("/campaign", func(r chi.Router) {
				r.Get("/create", h.handleCreateCampaignForm)
				r.Post("/create", h.handleCreateCampaign)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/edit", h.handleEditCampaignForm)
					r.Post("/edit", h.handleEditCampaign)
					r.Post("/delete", h.handleDeleteCampaign)
					r.Get("/metrics", h.handleCampaignMetrics)
					r.Post("/metrics", h.handleAddMetrics)
				})
			})
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
