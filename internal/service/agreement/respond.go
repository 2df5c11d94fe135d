package agreement

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/internal/service/alert"
	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

const maxAlertTitle = 200

// Decline marks an agreement declined and raises an agreement_declined alert.
// The alert outcome never changes the result of the decline.
func (s *Service) Decline(ctx context.Context, input DeclineInput) (*domain.Agreement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	reason := trimOrNil(input.Reason)

	var declined *domain.Agreement
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.agreements.GetByID(txCtx, input.AgreementID)
		if err != nil {
			return fmt.Errorf("get agreement: %w", err)
		}
		if !current.Status.CanTransitionTo(domain.AgreementStatusDeclined) {
			return fmt.Errorf("agreement %s is %s: %w", current.ID, current.Status, domain.ErrConflict)
		}

		declined, err = s.agreements.UpdateStatus(txCtx, current.ID, current.Status, domain.AgreementStatusDeclined, reason)
		if err != nil {
			return fmt.Errorf("decline agreement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "agreement declined",
		slog.String("agreement_id", declined.ID.String()),
		slog.String("user_id", userID.String()),
	)

	s.raise(ctx, declined, domain.AlertTypeAgreementDeclined, domain.SeverityTier2,
		"Agreement declined: "+declined.Title, reason)

	return declined, nil
}

// Modify replaces the agreement body, marks it modified and raises an
// agreement_modified alert.
func (s *Service) Modify(ctx context.Context, input ModifyInput) (*domain.Agreement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	body := trimOrNil(&input.Body)

	var modified *domain.Agreement
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.agreements.GetByID(txCtx, input.AgreementID)
		if err != nil {
			return fmt.Errorf("get agreement: %w", err)
		}
		if !current.Status.CanTransitionTo(domain.AgreementStatusModified) {
			return fmt.Errorf("agreement %s is %s: %w", current.ID, current.Status, domain.ErrConflict)
		}

		modified, err = s.agreements.UpdateBody(txCtx, current.ID, current.Status, *body)
		if err != nil {
			return fmt.Errorf("modify agreement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "agreement modified",
		slog.String("agreement_id", modified.ID.String()),
		slog.String("user_id", userID.String()),
	)

	s.raise(ctx, modified, domain.AlertTypeAgreementModified, domain.SeverityTier3,
		"Agreement modified: "+modified.Title, body)

	return modified, nil
}

func (s *Service) raise(ctx context.Context, a *domain.Agreement, alertType string, severity domain.Severity, title string, body *string) {
	for len(title) > maxAlertTitle {
		_, size := utf8.DecodeLastRuneInString(title)
		title = title[:len(title)-size]
	}
	table := domain.SourceTableAgreements
	id := a.ID

	res := s.alerts.CreateAlertIfNeeded(ctx, alert.CreateAlertInput{
		GroupID:         a.GroupID,
		SubjectPersonID: a.SubjectPersonID,
		Type:            alertType,
		Severity:        severity,
		Title:           title,
		Body:            body,
		SourceTable:     &table,
		SourceID:        &id,
	})
	if res.Skipped() {
		s.log.DebugContext(ctx, "agreement alert skipped",
			slog.String("agreement_id", a.ID.String()),
			slog.String("reason", res.Reason.String()),
			slog.String("details", res.Details),
		)
	}
}
