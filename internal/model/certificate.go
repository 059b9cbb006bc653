package model

import "time"

// Certificate is a completion certificate issued to a participant. Rendering
// (PDF generation, branding) happens outside this service; the record exists
// so a serial can be verified later.
type Certificate struct {
	ID            string    `json:"id"`
	HackathonID   string    `json:"hackathon_id"`
	ParticipantID string    `json:"participant_id"`
	Serial        string    `json:"serial"`
	Kind          string    `json:"kind"`
	IssuedOn      time.Time `json:"issued_on"`
	// Populated fields
	ParticipantName *string `json:"participant_name,omitempty"`
	HackathonName   *string `json:"hackathon_name,omitempty"`
}

// Certificate kind constants
const (
	CertificateKindParticipation = "participation"
	CertificateKindAchievement   = "achievement"
)

// IssueCertificatesRequest issues certificates for a set of participants
type IssueCertificatesRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
	Kind           string   `json:"kind,omitempty"` // Defaults to participation
}

// IsValidCertificateKind reports whether k is a known certificate kind
func IsValidCertificateKind(k string) bool {
	switch k {
	case CertificateKindParticipation, CertificateKindAchievement:
		return true
	default:
		return false
	}
}
