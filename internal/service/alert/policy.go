package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

const (
	patternSignalTitle = "Contradiction unresolved for over 24 hours"
	patternSignalBody  = "An open contradiction has not been reviewed for more than a day. Consider discussing it with the group."
)

// CreateAlertIfNeeded raises an alert unless an equivalent one is still
// active (duplicate_open) or was raised within the throttle window
// (throttled_24h). It never returns an error: every failure is reported as
// a skipped Result so the producer's own action is never aborted.
//
// The dedupe check, throttle check and insert are separate round trips.
// Two concurrent calls with the same key can both pass the checks and
// insert twice; that duplicate is tolerated.
func (s *Service) CreateAlertIfNeeded(ctx context.Context, input CreateAlertInput) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "alert policy panic", slog.Any("panic", r))
			res = skipped(ReasonError, fmt.Sprintf("panic: %v", r))
		}
	}()

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return s.skip(ctx, input, ReasonInvalidParams, err.Error())
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return s.skip(ctx, input, ReasonUnauthenticated, "no caller identity")
	}

	active, err := s.alerts.Find(ctx, dedupeQuery(input,
		domain.In(domain.AlertFieldStatus, domain.ActiveAlertStatuses()),
	))
	if err != nil {
		return s.skip(ctx, input, ReasonError, fmt.Sprintf("dedupe check: %v", err))
	}
	if len(active) > 0 {
		return s.skip(ctx, input, ReasonDuplicateOpen, "active alert "+active[0].ID.String())
	}

	since := s.now().UTC().Add(-s.throttleWindow)
	recent, err := s.alerts.Find(ctx, dedupeQuery(input,
		domain.Gte(domain.AlertFieldCreatedAt, since),
	))
	if err != nil {
		return s.skip(ctx, input, ReasonError, fmt.Sprintf("throttle check: %v", err))
	}
	if len(recent) > 0 {
		return s.skip(ctx, input, ReasonThrottled, "recent alert "+recent[0].ID.String())
	}

	created, err := s.alerts.Create(ctx, &domain.Alert{
		ID:              uuid.New(),
		GroupID:         input.GroupID,
		SubjectPersonID: input.SubjectPersonID,
		Type:            input.Type,
		Severity:        input.Severity,
		Title:           input.Title,
		Body:            input.Body,
		SourceTable:     input.SourceTable,
		SourceID:        input.SourceID,
		CreatedByUserID: userID,
	})
	if err != nil {
		return s.skip(ctx, input, ReasonError, fmt.Sprintf("insert: %v", err))
	}

	s.log.InfoContext(ctx, "alert created",
		slog.String("alert_id", created.ID.String()),
		slog.String("group_id", created.GroupID.String()),
		slog.String("type", created.Type),
		slog.String("severity", created.Severity.String()),
		slog.String("user_id", userID.String()),
	)

	return inserted(created)
}

// dedupeQuery builds the single definition of "the same alert": group,
// subject, type and the source pointer, where an absent source must match
// NULL rather than be left unconstrained. extra conditions are appended.
func dedupeQuery(input CreateAlertInput, extra ...domain.Cond) domain.Query {
	conds := make([]domain.Cond, 0, 5+len(extra))
	conds = append(conds,
		domain.Eq(domain.AlertFieldGroupID, input.GroupID),
		domain.Eq(domain.AlertFieldSubjectPersonID, input.SubjectPersonID),
		domain.Eq(domain.AlertFieldType, input.Type),
		domain.EqOrNull(domain.AlertFieldSourceTable, input.SourceTable),
		domain.EqOrNull(domain.AlertFieldSourceID, input.SourceID),
	)
	conds = append(conds, extra...)
	return domain.Query{Conds: conds, Limit: 1}
}

func (s *Service) skip(ctx context.Context, input CreateAlertInput, reason SkipReason, details string) Result {
	level := slog.LevelDebug
	switch {
	case reason == ReasonError:
		level = slog.LevelWarn
	case !reason.IsSuppression():
		level = slog.LevelInfo
	}
	s.log.Log(ctx, level, "alert skipped",
		slog.String("reason", reason.String()),
		slog.String("details", details),
		slog.String("group_id", input.GroupID.String()),
		slog.String("type", input.Type),
	)
	return skipped(reason, details)
}

// EnsureUnresolvedContradictionAlert raises a pattern_signal alert for the
// oldest contradiction of the subject that has stayed open longer than the
// staleness window. It goes through CreateAlertIfNeeded, so calling it on
// every view of the subject is safe. Failures are logged and swallowed.
func (s *Service) EnsureUnresolvedContradictionAlert(ctx context.Context, groupID, subjectPersonID uuid.UUID) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "unresolved contradiction check panic", slog.Any("panic", r))
		}
	}()

	before := s.now().UTC().Add(-s.staleAfter)
	rows, err := s.contradictions.Find(ctx, domain.Query{
		Conds: []domain.Cond{
			domain.Eq(domain.ContradictionFieldGroupID, groupID),
			domain.Eq(domain.ContradictionFieldSubjectPersonID, subjectPersonID),
			domain.Eq(domain.ContradictionFieldStatus, domain.ContradictionStatusOpen),
			domain.Lt(domain.ContradictionFieldCreatedAt, before),
		},
		OrderBy: domain.ContradictionFieldCreatedAt,
		Limit:   1,
	})
	if err != nil {
		s.log.WarnContext(ctx, "find stale contradictions",
			slog.String("group_id", groupID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if len(rows) == 0 {
		return
	}

	oldest := rows[0]
	table := domain.SourceTableContradictions
	body := patternSignalBody
	res := s.CreateAlertIfNeeded(ctx, CreateAlertInput{
		GroupID:         groupID,
		SubjectPersonID: subjectPersonID,
		Type:            domain.AlertTypePatternSignal,
		Severity:        domain.SeverityTier2,
		Title:           patternSignalTitle,
		Body:            &body,
		SourceTable:     &table,
		SourceID:        &oldest.ID,
	})

	s.log.DebugContext(ctx, "unresolved contradiction checked",
		slog.String("contradiction_id", oldest.ID.String()),
		slog.Bool("inserted", res.Inserted),
		slog.String("reason", res.Reason.String()),
	)
}
