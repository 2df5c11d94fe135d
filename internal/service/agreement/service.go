// Package agreement handles agreement responses (decline, modify) and raises
// the corresponding alerts.
package agreement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/internal/service/alert"
)

type agreementRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AgreementStatus, reason *string) (*domain.Agreement, error)
	UpdateBody(ctx context.Context, id uuid.UUID, from domain.AgreementStatus, body string) (*domain.Agreement, error)
}

type alerter interface {
	CreateAlertIfNeeded(ctx context.Context, input alert.CreateAlertInput) alert.Result
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides agreement responses.
type Service struct {
	agreements agreementRepo
	alerts     alerter
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Agreement service.
func NewService(
	log *slog.Logger,
	agreements agreementRepo,
	alerts alerter,
	tx txManager,
) *Service {
	return &Service{
		agreements: agreements,
		alerts:     alerts,
		tx:         tx,
		log:        log.With("service", "agreement"),
	}
}
