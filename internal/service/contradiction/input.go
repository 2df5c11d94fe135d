package contradiction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
)

// CreateInput holds parameters for recording a contradiction.
type CreateInput struct {
	GroupID         uuid.UUID
	SubjectPersonID uuid.UUID
	AgreementID     *uuid.UUID
	Title           string
	Description     *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.SubjectPersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_person_id", Message: "required"})
	}
	if i.AgreementID != nil && *i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "invalid"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 4000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 4000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStatusInput holds parameters for moving a contradiction forward.
type UpdateStatusInput struct {
	ContradictionID uuid.UUID
	Status          domain.ContradictionStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.ContradictionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contradiction_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds parameters for listing a subject's contradictions.
type ListInput struct {
	GroupID         uuid.UUID
	SubjectPersonID uuid.UUID
	Status          *domain.ContradictionStatus
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.SubjectPersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_person_id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

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
