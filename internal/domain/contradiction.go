package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contradiction record fields usable in a Query.
const (
	ContradictionFieldID              = "id"
	ContradictionFieldGroupID         = "group_id"
	ContradictionFieldSubjectPersonID = "subject_person_id"
	ContradictionFieldAgreementID     = "agreement_id"
	ContradictionFieldStatus          = "status"
	ContradictionFieldCreatedAt       = "created_at"
)

// Contradiction is an incident where observed behaviour contradicts an agreement.
type Contradiction struct {
	ID              uuid.UUID
	GroupID         uuid.UUID
	SubjectPersonID uuid.UUID
	AgreementID     *uuid.UUID
	Title           string
	Description     *string
	Status          ContradictionStatus
	CreatedByUserID uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SubjectRef identifies a supported person within a group.
type SubjectRef struct {
	GroupID         uuid.UUID
	SubjectPersonID uuid.UUID
}
