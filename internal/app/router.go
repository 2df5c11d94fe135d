package app

import (
	"log/slog"
	"net/http"

	"github.com/fordrm/the-a-team-sub000/internal/config"
	"github.com/fordrm/the-a-team-sub000/internal/transport/middleware"
	"github.com/fordrm/the-a-team-sub000/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health        *rest.HealthHandler
	Alert         *rest.AlertHandler
	Contradiction *rest.ContradictionHandler
	Agreement     *rest.AgreementHandler
	Admin         *rest.AdminHandler
}

// NewRouter builds the HTTP handler: routes on a method-aware ServeMux
// wrapped in RequestID, Logger, Recovery, CORS and Auth. Writes are rate
// limited per caller.
func NewRouter(
	h Handlers,
	tokens middleware.TokenValidator,
	limiter *middleware.RateLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()
	write := limiter.Limit(cfg.Server.WriteRateLimit)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/v1/alerts", write(http.HandlerFunc(h.Alert.Create)))
	mux.HandleFunc("GET /api/v1/alerts/{id}", h.Alert.Get)
	mux.HandleFunc("GET /api/v1/groups/{groupID}/alerts", h.Alert.List)
	mux.Handle("POST /api/v1/alerts/{id}/acknowledge", write(http.HandlerFunc(h.Alert.Acknowledge)))
	mux.Handle("POST /api/v1/alerts/{id}/resolve", write(http.HandlerFunc(h.Alert.Resolve)))
	mux.Handle("POST /api/v1/alerts/{id}/dismiss", write(http.HandlerFunc(h.Alert.Dismiss)))

	mux.Handle("POST /api/v1/contradictions", write(http.HandlerFunc(h.Contradiction.Create)))
	mux.Handle("PATCH /api/v1/contradictions/{id}/status", write(http.HandlerFunc(h.Contradiction.UpdateStatus)))
	mux.HandleFunc("GET /api/v1/groups/{groupID}/subjects/{subjectID}/contradictions", h.Contradiction.List)

	mux.Handle("POST /api/v1/agreements/{id}/decline", write(http.HandlerFunc(h.Agreement.Decline)))
	mux.Handle("POST /api/v1/agreements/{id}/modify", write(http.HandlerFunc(h.Agreement.Modify)))

	mux.Handle("POST /api/v1/admin/sweep", middleware.RequireAdmin(write(http.HandlerFunc(h.Admin.Sweep))))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens, logger),
	)(mux)
}
