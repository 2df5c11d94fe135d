package contradiction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/internal/service/alert"
	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

const maxAlertTitle = 200

// Create records a contradiction and raises a contradiction_created alert.
// The alert outcome never changes the result.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Contradiction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.contradictions.Create(ctx, &domain.Contradiction{
		ID:              uuid.New(),
		GroupID:         input.GroupID,
		SubjectPersonID: input.SubjectPersonID,
		AgreementID:     input.AgreementID,
		Title:           strings.TrimSpace(input.Title),
		Description:     trimOrNil(input.Description),
		Status:          domain.ContradictionStatusOpen,
		CreatedByUserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create contradiction: %w", err)
	}

	s.log.InfoContext(ctx, "contradiction created",
		slog.String("contradiction_id", created.ID.String()),
		slog.String("group_id", created.GroupID.String()),
		slog.String("user_id", userID.String()),
	)

	title := "Contradiction logged: " + created.Title
	for len(title) > maxAlertTitle {
		_, size := utf8.DecodeLastRuneInString(title)
		title = title[:len(title)-size]
	}
	table := domain.SourceTableContradictions
	id := created.ID
	res := s.alerts.CreateAlertIfNeeded(ctx, alert.CreateAlertInput{
		GroupID:         created.GroupID,
		SubjectPersonID: created.SubjectPersonID,
		Type:            domain.AlertTypeContradictionCreated,
		Severity:        domain.SeverityTier2,
		Title:           title,
		Body:            created.Description,
		SourceTable:     &table,
		SourceID:        &id,
	})
	if res.Skipped() {
		s.log.DebugContext(ctx, "contradiction alert skipped",
			slog.String("contradiction_id", created.ID.String()),
			slog.String("reason", res.Reason.String()),
		)
	}

	return created, nil
}

// UpdateStatus moves a contradiction forward in its review.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Contradiction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.contradictions.GetByID(ctx, input.ContradictionID)
	if err != nil {
		return nil, fmt.Errorf("get contradiction: %w", err)
	}
	if !current.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("contradiction %s is %s, cannot move to %s: %w",
			current.ID, current.Status, input.Status, domain.ErrConflict)
	}

	updated, err := s.contradictions.UpdateStatus(ctx, current.ID, current.Status, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update contradiction status: %w", err)
	}

	s.log.InfoContext(ctx, "contradiction status changed",
		slog.String("contradiction_id", updated.ID.String()),
		slog.String("from", current.Status.String()),
		slog.String("to", updated.Status.String()),
		slog.String("user_id", userID.String()),
	)
	return updated, nil
}

// List returns a subject's contradictions, oldest first. Each call also
// checks whether an open contradiction has gone stale and needs an alert.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Contradiction, error) {
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
	conds := []domain.Cond{
		domain.Eq(domain.ContradictionFieldGroupID, input.GroupID),
		domain.Eq(domain.ContradictionFieldSubjectPersonID, input.SubjectPersonID),
	}
	if input.Status != nil {
		conds = append(conds, domain.Eq(domain.ContradictionFieldStatus, *input.Status))
	}

	items, err := s.contradictions.Find(ctx, domain.Query{
		Conds:   conds,
		OrderBy: domain.ContradictionFieldCreatedAt,
		Limit:   limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list contradictions: %w", err)
	}

	s.alerts.EnsureUnresolvedContradictionAlert(ctx, input.GroupID, input.SubjectPersonID)

	return items, nil
}
