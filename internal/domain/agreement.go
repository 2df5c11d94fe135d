package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agreement is a commitment the group tracks for a supported person.
type Agreement struct {
	ID              uuid.UUID
	GroupID         uuid.UUID
	SubjectPersonID uuid.UUID
	Title           string
	Body            string
	Status          AgreementStatus
	DeclineReason   *string
	CreatedByUserID uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
