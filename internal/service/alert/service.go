// Package alert implements the alert creation policy (deduplication and
// throttling) and the forward-only alert lifecycle.
package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/config"
	"github.com/fordrm/the-a-team-sub000/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type alertRepo interface {
	Find(ctx context.Context, q domain.Query) ([]domain.Alert, error)
	Create(ctx context.Context, alert *domain.Alert) (*domain.Alert, error)
	GetByID(ctx context.Context, alertID uuid.UUID) (*domain.Alert, error)
	Transition(ctx context.Context, tr domain.AlertTransition) (*domain.Alert, error)
}

type contradictionRepo interface {
	Find(ctx context.Context, q domain.Query) ([]domain.Contradiction, error)
}

// Service decides whether alerts should be raised and manages their status.
type Service struct {
	alerts         alertRepo
	contradictions contradictionRepo
	log            *slog.Logger

	throttleWindow time.Duration
	staleAfter     time.Duration
	now            func() time.Time
}

// NewService creates a new Alert service.
func NewService(
	log *slog.Logger,
	alerts alertRepo,
	contradictions contradictionRepo,
	cfg config.AlertConfig,
) *Service {
	return &Service{
		alerts:         alerts,
		contradictions: contradictions,
		log:            log.With("service", "alert"),
		throttleWindow: cfg.ThrottleWindow,
		staleAfter:     cfg.StaleContradictionAfter,
		now:            time.Now,
	}
}
