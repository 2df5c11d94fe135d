// Package contradiction records contradictions against agreements and feeds
// the alert policy.
package contradiction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/internal/service/alert"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type contradictionRepo interface {
	Find(ctx context.Context, q domain.Query) ([]domain.Contradiction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contradiction, error)
	Create(ctx context.Context, c *domain.Contradiction) (*domain.Contradiction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.ContradictionStatus) (*domain.Contradiction, error)
}

type alerter interface {
	CreateAlertIfNeeded(ctx context.Context, input alert.CreateAlertInput) alert.Result
	EnsureUnresolvedContradictionAlert(ctx context.Context, groupID, subjectPersonID uuid.UUID)
}

// Service provides contradiction operations.
type Service struct {
	contradictions contradictionRepo
	alerts         alerter
	log            *slog.Logger
}

// NewService creates a new Contradiction service.
func NewService(log *slog.Logger, contradictions contradictionRepo, alerts alerter) *Service {
	return &Service{
		contradictions: contradictions,
		alerts:         alerts,
		log:            log.With("service", "contradiction"),
	}
}
