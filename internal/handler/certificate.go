package handler

import (
	"net/http"

	"github.com/teamsmith/hackops/internal/model"
	"github.com/teamsmith/hackops/internal/service"
)

// CertificateHandler handles certificate HTTP requests
type CertificateHandler struct {
	svc *service.CertificateService
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(svc *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{svc: svc}
}

// IssueCertificates handles POST /v1/hackathons/{hackathonId}/certificates
func (h *CertificateHandler) IssueCertificates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hackathonID := r.PathValue("hackathonId")

	var req model.IssueCertificatesRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	certificates, err := h.svc.IssueCertificates(ctx, hackathonID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusCreated, certificates, nil, nil)
}

// ListCertificates handles GET /v1/hackathons/{hackathonId}/certificates
func (h *CertificateHandler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	hackathonID := r.PathValue("hackathonId")

	certificates, err := h.svc.ListCertificates(r.Context(), hackathonID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, certificates, nil, nil)
}

// VerifyCertificate handles GET /v1/certificates/{serial}.
// Public endpoint: anyone holding a serial can check its authenticity.
func (h *CertificateHandler) VerifyCertificate(w http.ResponseWriter, r *http.Request) {
	serial := r.PathValue("serial")

	certificate, err := h.svc.VerifyCertificate(r.Context(), serial)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, certificate, nil)
}
