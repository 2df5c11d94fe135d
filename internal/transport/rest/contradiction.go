package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/internal/service/contradiction"
)

type contradictionService interface {
	Create(ctx context.Context, input contradiction.CreateInput) (*domain.Contradiction, error)
	UpdateStatus(ctx context.Context, input contradiction.UpdateStatusInput) (*domain.Contradiction, error)
	List(ctx context.Context, input contradiction.ListInput) ([]domain.Contradiction, error)
}

// ContradictionHandler serves contradiction REST endpoints.
type ContradictionHandler struct {
	svc contradictionService
	log *slog.Logger
}

// NewContradictionHandler creates a ContradictionHandler.
func NewContradictionHandler(svc contradictionService, logger *slog.Logger) *ContradictionHandler {
	return &ContradictionHandler{svc: svc, log: logger.With("handler", "contradiction")}
}

type createContradictionRequest struct {
	GroupID         uuid.UUID  `json:"groupId"`
	SubjectPersonID uuid.UUID  `json:"subjectPersonId"`
	AgreementID     *uuid.UUID `json:"agreementId,omitempty"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
}

type updateContradictionStatusRequest struct {
	Status string `json:"status"`
}

type contradictionResponse struct {
	ID              string     `json:"id"`
	GroupID         string     `json:"groupId"`
	SubjectPersonID string     `json:"subjectPersonId"`
	AgreementID     *uuid.UUID `json:"agreementId,omitempty"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Status          string     `json:"status"`
	CreatedByUserID string     `json:"createdByUserId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Create handles POST /api/v1/contradictions.
func (h *ContradictionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContradictionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), contradiction.CreateInput{
		GroupID:         req.GroupID,
		SubjectPersonID: req.SubjectPersonID,
		AgreementID:     req.AgreementID,
		Title:           req.Title,
		Description:     req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContradictionResponse(c))
}

// UpdateStatus handles PATCH /api/v1/contradictions/{id}/status.
func (h *ContradictionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateContradictionStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateStatus(r.Context(), contradiction.UpdateStatusInput{
		ContradictionID: id,
		Status:          domain.ContradictionStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContradictionResponse(c))
}

// List handles GET /api/v1/groups/{groupID}/subjects/{subjectID}/contradictions.
func (h *ContradictionHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}
	subjectID, ok := pathUUID(w, r, "subjectID")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	input := contradiction.ListInput{
		GroupID:         groupID,
		SubjectPersonID: subjectID,
		Limit:           limit,
		Offset:          offset,
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.ContradictionStatus(v)
		input.Status = &status
	}

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]contradictionResponse, 0, len(items))
	for i := range items {
		out = append(out, toContradictionResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func toContradictionResponse(c *domain.Contradiction) contradictionResponse {
	return contradictionResponse{
		ID:              c.ID.String(),
		GroupID:         c.GroupID.String(),
		SubjectPersonID: c.SubjectPersonID.String(),
		AgreementID:     c.AgreementID,
		Title:           c.Title,
		Description:     c.Description,
		Status:          c.Status.String(),
		CreatedByUserID: c.CreatedByUserID.String(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
