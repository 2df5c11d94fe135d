package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert types raised by the built-in producers.
const (
	AlertTypeAgreementDeclined    = "agreement_declined"
	AlertTypeAgreementModified    = "agreement_modified"
	AlertTypeContradictionCreated = "contradiction_created"
	AlertTypePatternSignal        = "pattern_signal"
)

// Source tables an alert can point back to.
const (
	SourceTableAgreements     = "agreements"
	SourceTableContradictions = "contradictions"
)

// Alert record fields usable in a Query.
const (
	AlertFieldID              = "id"
	AlertFieldGroupID         = "group_id"
	AlertFieldSubjectPersonID = "subject_person_id"
	AlertFieldType            = "type"
	AlertFieldSeverity        = "severity"
	AlertFieldSourceTable     = "source_table"
	AlertFieldSourceID        = "source_id"
	AlertFieldStatus          = "status"
	AlertFieldCreatedAt       = "created_at"
)

// Alert is a notification about a supported person, scoped to a care group.
// SourceTable and SourceID point at the record that triggered it.
type Alert struct {
	ID              uuid.UUID
	GroupID         uuid.UUID
	SubjectPersonID uuid.UUID
	Type            string
	Severity        Severity
	Title           string
	Body            *string
	SourceTable     *string
	SourceID        *uuid.UUID
	Status          AlertStatus

	AcknowledgedAt       *time.Time
	AcknowledgedByUserID *uuid.UUID
	ResolvedAt           *time.Time
	ResolvedByUserID     *uuid.UUID
	ResolutionNote       *string

	CreatedByUserID uuid.UUID
	CreatedAt       time.Time
}

// AlertTransition describes a status change applied to an alert.
// The change only applies while the alert is still in From.
type AlertTransition struct {
	AlertID uuid.UUID
	From    AlertStatus
	To      AlertStatus
	ActorID uuid.UUID
	Note    *string
	At      time.Time
}
