package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
	"github.com/fordrm/the-a-team-sub000/internal/service/alert"
)

type alertService interface {
	CreateAlertIfNeeded(ctx context.Context, input alert.CreateAlertInput) alert.Result
	GetAlert(ctx context.Context, alertID uuid.UUID) (*domain.Alert, error)
	ListAlerts(ctx context.Context, input alert.ListAlertsInput) ([]domain.Alert, error)
	Acknowledge(ctx context.Context, input alert.TransitionInput) (*domain.Alert, error)
	Resolve(ctx context.Context, input alert.TransitionInput) (*domain.Alert, error)
	Dismiss(ctx context.Context, input alert.TransitionInput) (*domain.Alert, error)
}

// AlertHandler serves alert REST endpoints.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alert")}
}

// createAlertRequest keeps IDs as strings so malformed values reach the
// policy and come back as an invalid_params skip rather than a decode error.
type createAlertRequest struct {
	GroupID         string  `json:"groupId"`
	SubjectPersonID string  `json:"subjectPersonId"`
	Type            string  `json:"type"`
	Severity        string  `json:"severity"`
	Title           string  `json:"title"`
	Body            *string `json:"body,omitempty"`
	SourceTable     *string `json:"sourceTable,omitempty"`
	SourceID        *string `json:"sourceId,omitempty"`
}

type transitionRequest struct {
	Note *string `json:"note,omitempty"`
}

type alertResponse struct {
	ID                   string     `json:"id"`
	GroupID              string     `json:"groupId"`
	SubjectPersonID      string     `json:"subjectPersonId"`
	Type                 string     `json:"type"`
	Severity             string     `json:"severity"`
	Title                string     `json:"title"`
	Body                 *string    `json:"body,omitempty"`
	SourceTable          *string    `json:"sourceTable,omitempty"`
	SourceID             *uuid.UUID `json:"sourceId,omitempty"`
	Status               string     `json:"status"`
	AcknowledgedAt       *time.Time `json:"acknowledgedAt,omitempty"`
	AcknowledgedByUserID *uuid.UUID `json:"acknowledgedByUserId,omitempty"`
	ResolvedAt           *time.Time `json:"resolvedAt,omitempty"`
	ResolvedByUserID     *uuid.UUID `json:"resolvedByUserId,omitempty"`
	ResolutionNote       *string    `json:"resolutionNote,omitempty"`
	CreatedByUserID      string     `json:"createdByUserId"`
	CreatedAt            time.Time  `json:"createdAt"`
}

type skippedResponse struct {
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason"`
	Details string `json:"details,omitempty"`
}

// Create handles POST /api/v1/alerts. An inserted alert is returned with 201.
// A suppressed one is reported with 200 and the skip reason; unauthenticated
// callers get 401.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res := h.svc.CreateAlertIfNeeded(r.Context(), alert.CreateAlertInput{
		GroupID:         parseOrNil(req.GroupID),
		SubjectPersonID: parseOrNil(req.SubjectPersonID),
		Type:            req.Type,
		Severity:        domain.Severity(req.Severity),
		Title:           req.Title,
		Body:            req.Body,
		SourceTable:     req.SourceTable,
		SourceID:        parseOptional(req.SourceID),
	})

	switch {
	case res.Inserted:
		writeJSON(w, http.StatusCreated, toAlertResponse(res.Alert))
	case res.Reason == alert.ReasonUnauthenticated:
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		writeJSON(w, http.StatusOK, skippedResponse{
			Skipped: true,
			Reason:  res.Reason.String(),
			Details: res.Details,
		})
	}
}

// Get handles GET /api/v1/alerts/{id}.
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetAlert(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponse(a))
}

// List handles GET /api/v1/groups/{groupID}/alerts?subject=&status=&limit=&offset=.
// status may repeat.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	input := alert.ListAlertsInput{GroupID: groupID, Limit: limit, Offset: offset}
	q := r.URL.Query()
	if v := q.Get("subject"); v != "" {
		subjectID, err := uuid.Parse(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation failed",
				Fields: []fieldResponse{{Field: "subject", Message: "must be a UUID"}},
			})
			return
		}
		input.SubjectPersonID = &subjectID
	}
	for _, s := range q["status"] {
		input.Statuses = append(input.Statuses, domain.AlertStatus(s))
	}

	alerts, err := h.svc.ListAlerts(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]alertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, toAlertResponse(&alerts[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Acknowledge handles POST /api/v1/alerts/{id}/acknowledge.
func (h *AlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Acknowledge)
}

// Resolve handles POST /api/v1/alerts/{id}/resolve.
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Resolve)
}

// Dismiss handles POST /api/v1/alerts/{id}/dismiss.
func (h *AlertHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Dismiss)
}

func (h *AlertHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(context.Context, alert.TransitionInput) (*domain.Alert, error),
) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req transitionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := apply(r.Context(), alert.TransitionInput{AlertID: id, Note: req.Note})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponse(a))
}

func toAlertResponse(a *domain.Alert) alertResponse {
	return alertResponse{
		ID:                   a.ID.String(),
		GroupID:              a.GroupID.String(),
		SubjectPersonID:      a.SubjectPersonID.String(),
		Type:                 a.Type,
		Severity:             a.Severity.String(),
		Title:                a.Title,
		Body:                 a.Body,
		SourceTable:          a.SourceTable,
		SourceID:             a.SourceID,
		Status:               a.Status.String(),
		AcknowledgedAt:       a.AcknowledgedAt,
		AcknowledgedByUserID: a.AcknowledgedByUserID,
		ResolvedAt:           a.ResolvedAt,
		ResolvedByUserID:     a.ResolvedByUserID,
		ResolutionNote:       a.ResolutionNote,
		CreatedByUserID:      a.CreatedByUserID.String(),
		CreatedAt:            a.CreatedAt,
	}
}

func parseOrNil(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseOptional(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id := parseOrNil(*s)
	return &id
}
