package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

// Acknowledge moves an open alert to acknowledged.
func (s *Service) Acknowledge(ctx context.Context, input TransitionInput) (*domain.Alert, error) {
	// Acknowledgement carries no resolution note.
	input.Note = nil
	return s.transition(ctx, input, domain.AlertStatusAcknowledged)
}

// Resolve moves an open or acknowledged alert to resolved.
func (s *Service) Resolve(ctx context.Context, input TransitionInput) (*domain.Alert, error) {
	return s.transition(ctx, input, domain.AlertStatusResolved)
}

// Dismiss moves an open or acknowledged alert to dismissed.
func (s *Service) Dismiss(ctx context.Context, input TransitionInput) (*domain.Alert, error) {
	return s.transition(ctx, input, domain.AlertStatusDismissed)
}

func (s *Service) transition(ctx context.Context, input TransitionInput, to domain.AlertStatus) (*domain.Alert, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.alerts.GetByID(ctx, input.AlertID)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}

	if !current.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("alert %s is %s, cannot move to %s: %w",
			current.ID, current.Status, to, domain.ErrConflict)
	}

	updated, err := s.alerts.Transition(ctx, domain.AlertTransition{
		AlertID: current.ID,
		From:    current.Status,
		To:      to,
		ActorID: userID,
		Note:    trimOrNil(input.Note),
		At:      s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("transition alert: %w", err)
	}

	s.log.InfoContext(ctx, "alert status changed",
		slog.String("alert_id", updated.ID.String()),
		slog.String("from", current.Status.String()),
		slog.String("to", updated.Status.String()),
		slog.String("user_id", userID.String()),
	)

	return updated, nil
}

// GetAlert returns a single alert by ID.
func (s *Service) GetAlert(ctx context.Context, alertID uuid.UUID) (*domain.Alert, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// ListAlerts returns a group's alerts, newest first.
func (s *Service) ListAlerts(ctx context.Context, input ListAlertsInput) ([]domain.Alert, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	conds := []domain.Cond{domain.Eq(domain.AlertFieldGroupID, input.GroupID)}
	if input.SubjectPersonID != nil {
		conds = append(conds, domain.Eq(domain.AlertFieldSubjectPersonID, *input.SubjectPersonID))
	}
	if len(input.Statuses) > 0 {
		conds = append(conds, domain.In(domain.AlertFieldStatus, input.Statuses))
	}

	alerts, err := s.alerts.Find(ctx, domain.Query{
		Conds:   conds,
		OrderBy: domain.AlertFieldCreatedAt,
		Desc:    true,
		Limit:   limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}
