package alert

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
)

// CreateAlertInput holds the parameters a producer supplies when raising an
// alert. The author is never part of the input: it is taken from the caller
// identity in the context.
type CreateAlertInput struct {
	GroupID         uuid.UUID
	SubjectPersonID uuid.UUID
	Type            string
	Severity        domain.Severity
	Title           string
	Body            *string
	SourceTable     *string
	SourceID        *uuid.UUID
}

// normalize trims text fields and turns empty optionals into nil.
func (i CreateAlertInput) normalize() CreateAlertInput {
	i.Type = strings.TrimSpace(i.Type)
	i.Title = strings.TrimSpace(i.Title)
	i.Body = trimOrNil(i.Body)
	i.SourceTable = trimOrNil(i.SourceTable)
	if i.SourceID != nil && *i.SourceID == uuid.Nil {
		i.SourceID = nil
	}
	return i
}

// Validate checks all fields and collects all errors. Only the
// source_table => source_id direction of the source pairing is checked;
// a source_id without source_table is accepted here.
func (i CreateAlertInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.SubjectPersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_person_id", Message: "required"})
	}
	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	} else if len(i.Type) > 64 {
		errs = append(errs, domain.FieldError{Field: "type", Message: "max 64 characters"})
	}
	if i.Severity == "" {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "required"})
	} else if !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "unknown severity"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Body != nil && len(*i.Body) > 4000 {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 4000 characters"})
	}
	if i.SourceTable != nil && i.SourceID == nil {
		errs = append(errs, domain.FieldError{Field: "source_id", Message: "required when source_table is set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TransitionInput identifies the alert to move and an optional note kept as
// the resolution note.
type TransitionInput struct {
	AlertID uuid.UUID
	Note    *string
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError
	if i.AlertID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "alert_id", Message: "required"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListAlertsInput holds the parameters for listing a group's alerts.
type ListAlertsInput struct {
	GroupID         uuid.UUID
	SubjectPersonID *uuid.UUID
	Statuses        []domain.AlertStatus
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i ListAlertsInput) Validate() error {
	var errs []domain.FieldError
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	for _, s := range i.Statuses {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status " + string(s)})
		}
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
