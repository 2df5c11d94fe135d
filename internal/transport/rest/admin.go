package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fordrm/the-a-team-sub000/internal/service/sweep"
	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

type sweepRunner interface {
	Run(ctx context.Context) (sweep.Report, error)
}

// AdminHandler serves operator endpoints.
type AdminHandler struct {
	sweep sweepRunner
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(sweep sweepRunner, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		sweep: sweep,
		log:   logger.With("handler", "admin"),
	}
}

type sweepResponse struct {
	Subjects int    `json:"subjects"`
	Checked  int    `json:"checked"`
	Duration string `json:"duration"`
}

// Sweep runs the unresolved-contradiction sweep under the caller's identity.
// The route is mounted behind middleware.RequireAdmin.
// POST /api/v1/admin/sweep
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.sweep.Run(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	h.log.InfoContext(r.Context(), "manual sweep",
		slog.String("user_id", userID.String()),
		slog.Int("subjects", report.Subjects),
	)
	writeJSON(w, http.StatusOK, sweepResponse{
		Subjects: report.Subjects,
		Checked:  report.Checked,
		Duration: report.Duration.String(),
	})
}
