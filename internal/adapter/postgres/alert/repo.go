// Package alert implements the Alert repository using PostgreSQL.
package alert

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/fordrm/the-a-team-sub000/internal/adapter/postgres"
	"github.com/fordrm/the-a-team-sub000/internal/domain"
)

const table = "alerts"

var columns = []string{
	"id", "group_id", "subject_person_id", "type", "severity", "title", "body",
	"source_table", "source_id", "status",
	"acknowledged_at", "acknowledged_by_user_id",
	"resolved_at", "resolved_by_user_id", "resolution_note",
	"created_by_user_id", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// filterColumns lists the fields a domain.Query may reference.
var filterColumns = postgres.Columns{
	domain.AlertFieldID:              "id",
	domain.AlertFieldGroupID:         "group_id",
	domain.AlertFieldSubjectPersonID: "subject_person_id",
	domain.AlertFieldType:            "type",
	domain.AlertFieldSeverity:        "severity",
	domain.AlertFieldSourceTable:     "source_table",
	domain.AlertFieldSourceID:        "source_id",
	domain.AlertFieldStatus:          "status",
	domain.AlertFieldCreatedAt:       "created_at",
}

// Repo provides alert persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new alert repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Find returns the alerts matching q.
func (r *Repo) Find(ctx context.Context, q domain.Query) ([]domain.Alert, error) {
	b, err := postgres.ApplyQuery(postgres.Builder().Select(columns...).From(table), q, filterColumns)
	if err != nil {
		return nil, fmt.Errorf("find alerts: %w", err)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("find alerts: build: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find alerts: %w", err)
	}

	alerts := make([]domain.Alert, len(rows))
	for i, rw := range rows {
		alerts[i] = rw.toDomain()
	}
	return alerts, nil
}

// GetByID returns an alert by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get alert: build: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "alert", id)
	}
	a := rw.toDomain()
	return &a, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an alert. status and created_at are left to the column
// defaults unless set.
func (r *Repo) Create(ctx context.Context, a *domain.Alert) (*domain.Alert, error) {
	cols := []string{
		"id", "group_id", "subject_person_id", "type", "severity", "title", "body",
		"source_table", "source_id", "created_by_user_id",
	}
	vals := []any{
		a.ID, a.GroupID, a.SubjectPersonID, a.Type, string(a.Severity), a.Title, a.Body,
		a.SourceTable, a.SourceID, a.CreatedByUserID,
	}
	if a.Status != "" {
		cols = append(cols, "status")
		vals = append(vals, string(a.Status))
	}
	if !a.CreatedAt.IsZero() {
		cols = append(cols, "created_at")
		vals = append(vals, a.CreatedAt)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(cols...).
		Values(vals...).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create alert: build: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "alert", a.ID)
	}
	created := rw.toDomain()
	return &created, nil
}

// Transition applies tr only while the alert is still in tr.From. When no
// row matches it returns ErrNotFound for a missing alert and ErrConflict for
// one that has moved on.
func (r *Repo) Transition(ctx context.Context, tr domain.AlertTransition) (*domain.Alert, error) {
	b := postgres.Builder().
		Update(table).
		Set("status", string(tr.To))
	switch tr.To {
	case domain.AlertStatusAcknowledged:
		b = b.Set("acknowledged_at", tr.At).
			Set("acknowledged_by_user_id", tr.ActorID)
	default:
		b = b.Set("resolved_at", tr.At).
			Set("resolved_by_user_id", tr.ActorID).
			Set("resolution_note", tr.Note)
	}

	query, args, err := b.
		Where(sq.Eq{"id": tr.AlertID, "status": string(tr.From)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("transition alert: build: %w", err)
	}

	var rw row
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...)
	if err == nil {
		updated := rw.toDomain()
		return &updated, nil
	}

	mapped := postgres.MapError(err, "alert", tr.AlertID)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}
	if _, getErr := r.GetByID(ctx, tr.AlertID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("alert %s is no longer %s: %w", tr.AlertID, tr.From, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type row struct {
	ID                   uuid.UUID  `db:"id"`
	GroupID              uuid.UUID  `db:"group_id"`
	SubjectPersonID      uuid.UUID  `db:"subject_person_id"`
	Type                 string     `db:"type"`
	Severity             string     `db:"severity"`
	Title                string     `db:"title"`
	Body                 *string    `db:"body"`
	SourceTable          *string    `db:"source_table"`
	SourceID             *uuid.UUID `db:"source_id"`
	Status               string     `db:"status"`
	AcknowledgedAt       *time.Time `db:"acknowledged_at"`
	AcknowledgedByUserID *uuid.UUID `db:"acknowledged_by_user_id"`
	ResolvedAt           *time.Time `db:"resolved_at"`
	ResolvedByUserID     *uuid.UUID `db:"resolved_by_user_id"`
	ResolutionNote       *string    `db:"resolution_note"`
	CreatedByUserID      uuid.UUID  `db:"created_by_user_id"`
	CreatedAt            time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.Alert {
	return domain.Alert{
		ID:                   r.ID,
		GroupID:              r.GroupID,
		SubjectPersonID:      r.SubjectPersonID,
		Type:                 r.Type,
		Severity:             domain.Severity(r.Severity),
		Title:                r.Title,
		Body:                 r.Body,
		SourceTable:          r.SourceTable,
		SourceID:             r.SourceID,
		Status:               domain.AlertStatus(r.Status),
		AcknowledgedAt:       r.AcknowledgedAt,
		AcknowledgedByUserID: r.AcknowledgedByUserID,
		ResolvedAt:           r.ResolvedAt,
		ResolvedByUserID:     r.ResolvedByUserID,
		ResolutionNote:       r.ResolutionNote,
		CreatedByUserID:      r.CreatedByUserID,
		CreatedAt:            r.CreatedAt,
	}
}
