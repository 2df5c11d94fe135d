// Package contradiction implements the Contradiction repository using PostgreSQL.
package contradiction

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

const table = "contradictions"

var columns = []string{
	"id", "group_id", "subject_person_id", "agreement_id", "title", "description",
	"status", "created_by_user_id", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var filterColumns = postgres.Columns{
	domain.ContradictionFieldID:              "id",
	domain.ContradictionFieldGroupID:         "group_id",
	domain.ContradictionFieldSubjectPersonID: "subject_person_id",
	domain.ContradictionFieldAgreementID:     "agreement_id",
	domain.ContradictionFieldStatus:          "status",
	domain.ContradictionFieldCreatedAt:       "created_at",
}

// Repo provides contradiction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new contradiction repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Find returns the contradictions matching q.
func (r *Repo) Find(ctx context.Context, q domain.Query) ([]domain.Contradiction, error) {
	b, err := postgres.ApplyQuery(postgres.Builder().Select(columns...).From(table), q, filterColumns)
	if err != nil {
		return nil, fmt.Errorf("find contradictions: %w", err)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("find contradictions: build: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find contradictions: %w", err)
	}

	out := make([]domain.Contradiction, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a contradiction by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contradiction, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get contradiction: build: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "contradiction", id)
	}
	c := rw.toDomain()
	return &c, nil
}

// Create inserts a contradiction. status and timestamps use the column defaults.
func (r *Repo) Create(ctx context.Context, c *domain.Contradiction) (*domain.Contradiction, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "group_id", "subject_person_id", "agreement_id", "title", "description", "created_by_user_id").
		Values(c.ID, c.GroupID, c.SubjectPersonID, c.AgreementID, c.Title, c.Description, c.CreatedByUserID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create contradiction: build: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "contradiction", c.ID)
	}
	created := rw.toDomain()
	return &created, nil
}

// UpdateStatus moves a contradiction from one status to another. It fails
// with ErrConflict when the row is no longer in from.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.ContradictionStatus) (*domain.Contradiction, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(from)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update contradiction status: build: %w", err)
	}

	var rw row
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...)
	if err == nil {
		updated := rw.toDomain()
		return &updated, nil
	}

	mapped := postgres.MapError(err, "contradiction", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("contradiction %s is no longer %s: %w", id, from, domain.ErrConflict)
}

// ListStaleSubjects returns every (group, subject) pair that owns an open
// contradiction created before the given time.
func (r *Repo) ListStaleSubjects(ctx context.Context, before time.Time) ([]domain.SubjectRef, error) {
	query, args, err := postgres.Builder().
		Select("group_id", "subject_person_id").
		Distinct().
		From(table).
		Where(sq.Eq{"status": string(domain.ContradictionStatusOpen)}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("group_id", "subject_person_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list stale subjects: build: %w", err)
	}

	var refs []subjectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &refs, query, args...); err != nil {
		return nil, fmt.Errorf("list stale subjects: %w", err)
	}

	out := make([]domain.SubjectRef, len(refs))
	for i, s := range refs {
		out[i] = domain.SubjectRef{GroupID: s.GroupID, SubjectPersonID: s.SubjectPersonID}
	}
	return out, nil
}

type row struct {
	ID              uuid.UUID  `db:"id"`
	GroupID         uuid.UUID  `db:"group_id"`
	SubjectPersonID uuid.UUID  `db:"subject_person_id"`
	AgreementID     *uuid.UUID `db:"agreement_id"`
	Title           string     `db:"title"`
	Description     *string    `db:"description"`
	Status          string     `db:"status"`
	CreatedByUserID uuid.UUID  `db:"created_by_user_id"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type subjectRow struct {
	GroupID         uuid.UUID `db:"group_id"`
	SubjectPersonID uuid.UUID `db:"subject_person_id"`
}

func (r row) toDomain() domain.Contradiction {
	return domain.Contradiction{
		ID:              r.ID,
		GroupID:         r.GroupID,
		SubjectPersonID: r.SubjectPersonID,
		AgreementID:     r.AgreementID,
		Title:           r.Title,
		Description:     r.Description,
		Status:          domain.ContradictionStatus(r.Status),
		CreatedByUserID: r.CreatedByUserID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
