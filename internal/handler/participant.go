package handler

import (
	"net/http"

	"github.com/teamsmith/hackops/internal/model"
	"github.com/teamsmith/hackops/internal/service"
)

// ParticipantHandler handles participant HTTP requests
type ParticipantHandler struct {
	svc *service.ParticipantService
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(svc *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{svc: svc}
}

// RegisterParticipant handles POST /v1/hackathons/{hackathonId}/participants
func (h *ParticipantHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hackathonID := r.PathValue("hackathonId")

	var req model.RegisterParticipantRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	var fieldErrors []model.FieldError
	if req.Name == "" {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if req.Email == "" {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	participant, err := h.svc.RegisterParticipant(ctx, hackathonID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, participant, nil)
}

// ListParticipants handles GET /v1/hackathons/{hackathonId}/participants
// with an optional ?status= filter.
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")
	status := r.URL.Query().Get("status")

	participants, err := h.svc.ListParticipants(r.Context(), hackathonID, status)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, participants, nil, nil)
}

// GetParticipant handles GET /v1/participants/{participantId}
func (h *ParticipantHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participantId")

	participant, err := h.svc.GetParticipant(r.Context(), participantID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, participant, nil)
}

// ReviewParticipant handles PATCH /v1/participants/{participantId}/review
func (h *ParticipantHandler) ReviewParticipant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	participantID := r.PathValue("participantId")

	var req model.ReviewParticipantRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	participant, err := h.svc.ReviewParticipant(ctx, participantID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, participant, nil)
}

// RemoveParticipant handles DELETE /v1/participants/{participantId}
func (h *ParticipantHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participantId")

	if err := h.svc.RemoveParticipant(r.Context(), participantID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
