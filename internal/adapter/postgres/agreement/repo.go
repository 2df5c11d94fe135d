// Package agreement implements the Agreement repository using PostgreSQL.
package agreement

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

const table = "agreements"

var columns = []string{
	"id", "group_id", "subject_person_id", "title", "body", "status", "decline_reason",
	"created_by_user_id", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides agreement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new agreement repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns an agreement by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get agreement: build: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// Create inserts an agreement.
func (r *Repo) Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	status := a.Status
	if status == "" {
		status = domain.AgreementStatusProposed
	}
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "group_id", "subject_person_id", "title", "body", "status", "created_by_user_id").
		Values(a.ID, a.GroupID, a.SubjectPersonID, a.Title, a.Body, string(status), a.CreatedByUserID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create agreement: build: %w", err)
	}
	return r.getOne(ctx, a.ID, query, args)
}

// UpdateStatus moves an agreement from one status to another and stores the
// decline reason, if any. It fails with ErrConflict when the row is no
// longer in from.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AgreementStatus, reason *string) (*domain.Agreement, error) {
	b := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()"))
	if reason != nil {
		b = b.Set("decline_reason", *reason)
	}
	query, args, err := b.
		Where(sq.Eq{"id": id, "status": string(from)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update agreement status: build: %w", err)
	}
	return r.conditional(ctx, id, from, query, args)
}

// UpdateBody replaces the body and marks the agreement modified.
func (r *Repo) UpdateBody(ctx context.Context, id uuid.UUID, from domain.AgreementStatus, body string) (*domain.Agreement, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("body", body).
		Set("status", string(domain.AgreementStatusModified)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(from)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update agreement body: build: %w", err)
	}
	return r.conditional(ctx, id, from, query, args)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Agreement, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "agreement", id)
	}
	a := rw.toDomain()
	return &a, nil
}

// conditional runs a status-guarded update and tells a missing row apart
// from one whose status has moved on.
func (r *Repo) conditional(ctx context.Context, id uuid.UUID, from domain.AgreementStatus, query string, args []any) (*domain.Agreement, error) {
	a, err := r.getOne(ctx, id, query, args)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return a, err
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("agreement %s is no longer %s: %w", id, from, domain.ErrConflict)
}

type row struct {
	ID              uuid.UUID `db:"id"`
	GroupID         uuid.UUID `db:"group_id"`
	SubjectPersonID uuid.UUID `db:"subject_person_id"`
	Title           string    `db:"title"`
	Body            string    `db:"body"`
	Status          string    `db:"status"`
	DeclineReason   *string   `db:"decline_reason"`
	CreatedByUserID uuid.UUID `db:"created_by_user_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Agreement {
	return domain.Agreement{
		ID:              r.ID,
		GroupID:         r.GroupID,
		SubjectPersonID: r.SubjectPersonID,
		Title:           r.Title,
		Body:            r.Body,
		Status:          domain.AgreementStatus(r.Status),
		DeclineReason:   r.DeclineReason,
		CreatedByUserID: r.CreatedByUserID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
