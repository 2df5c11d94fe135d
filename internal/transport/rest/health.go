package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
	policy  *PolicyStatus
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now()}
}

// WithAlertPolicy makes /health report the dedupe windows in force.
func (h *HealthHandler) WithAlertPolicy(throttleWindow, staleAfter time.Duration) *HealthHandler {
	h.policy = &PolicyStatus{
		ThrottleWindow: throttleWindow.String(),
		StaleAfter:     staleAfter.String(),
	}
	return h
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Policy     *PolicyStatus         `json:"alertPolicy,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// PolicyStatus describes the alert dedupe configuration.
type PolicyStatus struct {
	ThrottleWindow string `json:"throttleWindow"`
	StaleAfter     string `json:"staleContradictionAfter"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. 200 if the database answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:    db.Status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency, version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: map[string]CompStatus{"database": db},
		Policy:     h.policy,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
