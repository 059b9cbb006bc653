package handler

import (
	"net/http"

	"github.com/teamsmith/hackops/internal/model"
	"github.com/teamsmith/hackops/internal/service"
)

// HackathonHandler handles hackathon HTTP requests
type HackathonHandler struct {
	svc *service.HackathonService
}

// NewHackathonHandler creates a new hackathon handler
func NewHackathonHandler(svc *service.HackathonService) *HackathonHandler {
	return &HackathonHandler{svc: svc}
}

// CreateHackathon handles POST /v1/hackathons
func (h *HackathonHandler) CreateHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateHackathonRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	hackathon, err := h.svc.CreateHackathon(ctx, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, hackathon, nil)
}

// ListHackathons handles GET /v1/hackathons
func (h *HackathonHandler) ListHackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.svc.ListHackathons(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, hackathons, nil, nil)
}

// GetHackathon handles GET /v1/hackathons/{hackathonId}
func (h *HackathonHandler) GetHackathon(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")

	hackathon, err := h.svc.GetHackathon(r.Context(), hackathonID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, hackathon, nil)
}

// UpdateHackathon handles PATCH /v1/hackathons/{hackathonId}
func (h *HackathonHandler) UpdateHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hackathonID := r.PathValue("hackathonId")

	var req model.UpdateHackathonRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	hackathon, err := h.svc.UpdateHackathon(ctx, hackathonID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, hackathon, nil)
}

// DeleteHackathon handles DELETE /v1/hackathons/{hackathonId}
func (h *HackathonHandler) DeleteHackathon(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")

	if err := h.svc.DeleteHackathon(r.Context(), hackathonID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
