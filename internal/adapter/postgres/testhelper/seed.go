package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAgreement inserts an active agreement for a fresh group and subject.
func SeedAgreement(t *testing.T, pool *pgxpool.Pool) domain.Agreement {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Agreement{
		ID:              uuid.New(),
		GroupID:         uuid.New(),
		SubjectPersonID: uuid.New(),
		Title:           "Evening check-in " + uniqueSuffix(),
		Body:            "Call before 9pm.",
		Status:          domain.AgreementStatusActive,
		CreatedByUserID: uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO agreements (id, group_id, subject_person_id, title, body, status, created_by_user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.GroupID, a.SubjectPersonID, a.Title, a.Body, string(a.Status), a.CreatedByUserID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAgreement: %v", err)
	}
	return a
}

// SeedContradiction inserts an open contradiction created age ago.
func SeedContradiction(t *testing.T, pool *pgxpool.Pool, groupID, subjectID uuid.UUID, status domain.ContradictionStatus, age time.Duration) domain.Contradiction {
	t.Helper()
	created := time.Now().UTC().Add(-age).Truncate(time.Microsecond)
	c := domain.Contradiction{
		ID:              uuid.New(),
		GroupID:         groupID,
		SubjectPersonID: subjectID,
		Title:           "Missed call " + uniqueSuffix(),
		Status:          status,
		CreatedByUserID: uuid.New(),
		CreatedAt:       created,
		UpdatedAt:       created,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO contradictions (id, group_id, subject_person_id, title, status, created_by_user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.GroupID, c.SubjectPersonID, c.Title, string(c.Status), c.CreatedByUserID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContradiction: %v", err)
	}
	return c
}

// SeedAlert inserts an alert as given, including status and created_at.
func SeedAlert(t *testing.T, pool *pgxpool.Pool, a domain.Alert) domain.Alert {
	t.Helper()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = domain.AlertStatusOpen
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO alerts (id, group_id, subject_person_id, type, severity, title, body, source_table, source_id, status, created_by_user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.GroupID, a.SubjectPersonID, a.Type, string(a.Severity), a.Title, a.Body,
		a.SourceTable, a.SourceID, string(a.Status), a.CreatedByUserID, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAlert: %v", err)
	}
	return a
}
