package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/internal/service/agreement"
)

type agreementService interface {
	Decline(ctx context.Context, input agreement.DeclineInput) (*domain.Agreement, error)
	Modify(ctx context.Context, input agreement.ModifyInput) (*domain.Agreement, error)
}

// AgreementHandler serves agreement response endpoints.
type AgreementHandler struct {
	svc agreementService
	log *slog.Logger
}

// NewAgreementHandler creates an AgreementHandler.
func NewAgreementHandler(svc agreementService, logger *slog.Logger) *AgreementHandler {
	return &AgreementHandler{svc: svc, log: logger.With("handler", "agreement")}
}

type declineRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type modifyRequest struct {
	Body string `json:"body"`
}

type agreementResponse struct {
	ID              string    `json:"id"`
	GroupID         string    `json:"groupId"`
	SubjectPersonID string    `json:"subjectPersonId"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	Status          string    `json:"status"`
	DeclineReason   *string   `json:"declineReason,omitempty"`
	CreatedByUserID string    `json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Decline handles POST /api/v1/agreements/{id}/decline.
func (h *AgreementHandler) Decline(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req declineRequest
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := h.svc.Decline(r.Context(), agreement.DeclineInput{AgreementID: id, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAgreementResponse(a))
}

// Modify handles POST /api/v1/agreements/{id}/modify.
func (h *AgreementHandler) Modify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req modifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := h.svc.Modify(r.Context(), agreement.ModifyInput{AgreementID: id, Body: req.Body})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAgreementResponse(a))
}

func toAgreementResponse(a *domain.Agreement) agreementResponse {
	return agreementResponse{
		ID:              a.ID.String(),
		GroupID:         a.GroupID.String(),
		SubjectPersonID: a.SubjectPersonID.String(),
		Title:           a.Title,
		Body:            a.Body,
		Status:          a.Status.String(),
		DeclineReason:   a.DeclineReason,
		CreatedByUserID: a.CreatedByUserID.String(),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
