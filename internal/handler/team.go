package handler

import (
	"net/http"

	"github.com/teamsmith/hackops/internal/service"
)

// TeamHandler handles team assignment HTTP requests
type TeamHandler struct {
	teamService *service.TeamService
	dispatcher  *service.Dispatcher
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService, dispatcher *service.Dispatcher) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		dispatcher:  dispatcher,
	}
}

// RunAssignment handles POST /v1/hackathons/{hackathonId}/assignments.
// Any previous assignment for the hackathon is replaced wholesale.
func (h *TeamHandler) RunAssignment(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")

	view, err := h.teamService.RunAssignment(r.Context(), hackathonID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, view, nil)
}

// GetAssignment handles GET /v1/hackathons/{hackathonId}/assignments
func (h *TeamHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")

	view, err := h.teamService.GetAssignment(r.Context(), hackathonID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, view, nil)
}

// ClearAssignment handles DELETE /v1/hackathons/{hackathonId}/assignments
func (h *TeamHandler) ClearAssignment(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")

	if err := h.teamService.ClearAssignment(r.Context(), hackathonID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// ListNotifications handles GET /v1/hackathons/{hackathonId}/notifications
func (h *TeamHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")

	notifications, err := h.dispatcher.ListNotifications(r.Context(), hackathonID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, notifications, nil, nil)
}

// DispatchNotifications handles POST /v1/notifications/dispatch.
// It drains the outbox immediately instead of waiting for the next
// background pass.
func (h *TeamHandler) DispatchNotifications(w http.ResponseWriter, r *http.Request) {
	results, err := h.dispatcher.DispatchQueued(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, results, nil, nil)
}
