// Package sweep raises pattern-signal alerts for every subject whose open
// contradictions have gone stale, without waiting for someone to view them.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fordrm/the-a-team-sub000/internal/config"
	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

type contradictionRepo interface {
	ListStaleSubjects(ctx context.Context, before time.Time) ([]domain.SubjectRef, error)
}

type alerter interface {
	EnsureUnresolvedContradictionAlert(ctx context.Context, groupID, subjectPersonID uuid.UUID)
}

// Report summarises one sweep.
type Report struct {
	Subjects int           `json:"subjects"`
	Checked  int           `json:"checked"`
	Duration time.Duration `json:"duration_ns"`
}

// Service runs the unresolved-contradiction sweep.
type Service struct {
	contradictions contradictionRepo
	alerts         alerter
	log            *slog.Logger
	staleAfter     time.Duration
	concurrency    int
	actorID        uuid.UUID
	now            func() time.Time
}

// NewService creates a sweep service.
func NewService(log *slog.Logger, contradictions contradictionRepo, alerts alerter, alertCfg config.AlertConfig, cfg config.SweepConfig) *Service {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		contradictions: contradictions,
		alerts:         alerts,
		log:            log.With("service", "sweep"),
		staleAfter:     alertCfg.StaleContradictionAfter,
		concurrency:    concurrency,
		actorID:        cfg.ActorID,
		now:            time.Now,
	}
}

// Run checks every subject with a stale open contradiction. The caller's
// identity is used when present, otherwise the configured service actor.
// Individual alert outcomes never fail the sweep; only a failed subject
// lookup or a cancelled context does.
func (s *Service) Run(ctx context.Context) (Report, error) {
	start := s.now()
	ctx, err := s.withActor(ctx)
	if err != nil {
		return Report{}, err
	}

	subjects, err := s.contradictions.ListStaleSubjects(ctx, start.UTC().Add(-s.staleAfter))
	if err != nil {
		return Report{}, fmt.Errorf("list stale subjects: %w", err)
	}

	var checked atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, ref := range subjects {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.alerts.EnsureUnresolvedContradictionAlert(gctx, ref.GroupID, ref.SubjectPersonID)
			checked.Add(1)
			return nil
		})
	}
	waitErr := g.Wait()

	report := Report{
		Subjects: len(subjects),
		Checked:  int(checked.Load()),
		Duration: s.now().Sub(start),
	}
	if waitErr != nil {
		return report, fmt.Errorf("sweep interrupted: %w", waitErr)
	}

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("subjects", report.Subjects),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

func (s *Service) withActor(ctx context.Context) (context.Context, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return ctx, nil
	}
	if s.actorID == uuid.Nil {
		return ctx, fmt.Errorf("sweep actor not configured: %w", domain.ErrUnauthorized)
	}
	return ctxutil.WithUserID(ctx, s.actorID), nil
}
