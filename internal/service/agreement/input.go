package agreement

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
)

// DeclineInput holds parameters for declining an agreement.
type DeclineInput struct {
	AgreementID uuid.UUID
	Reason      *string
}

// Validate checks all fields and collects all errors.
func (i DeclineInput) Validate() error {
	var errs []domain.FieldError
	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	if i.Reason != nil && len(strings.TrimSpace(*i.Reason)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ModifyInput holds parameters for modifying an agreement's terms.
type ModifyInput struct {
	AgreementID uuid.UUID
	Body        string
}

// Validate checks all fields and collects all errors.
func (i ModifyInput) Validate() error {
	var errs []domain.FieldError
	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if len(body) > 4000 {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 4000 characters"})
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
