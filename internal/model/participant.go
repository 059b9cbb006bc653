package model

import "time"

// Participant represents a registration for a hackathon. The declared role is
// the single categorical attribute that team formation quota rules key on.
type Participant struct {
	ID          string    `json:"id"`
	HackathonID string    `json:"hackathon_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Participant status constants
const (
	ParticipantStatusPending  = "pending"
	ParticipantStatusApproved = "approved"
	ParticipantStatusRejected = "rejected"
)

// RoleUnspecified is the attribute value for participants who declared no role
const RoleUnspecified = "unspecified"

// Constraints
const (
	MaxParticipantNameLength = 100
	MaxParticipantsPerEvent  = 2000
	MaxRoleLength            = 50
	MaxNotesLength           = 500
)

// RegisterParticipantRequest represents a registration request
type RegisterParticipantRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role,omitempty"` // Defaults to RoleUnspecified
	Notes *string `json:"notes,omitempty"`
}

// ReviewParticipantRequest approves or rejects a pending registration
type ReviewParticipantRequest struct {
	Status string  `json:"status"` // approved or rejected
	Notes  *string `json:"notes,omitempty"`
}

// IsValidParticipantStatus reports whether s is a known participant status
func IsValidParticipantStatus(s string) bool {
	switch s {
	case ParticipantStatusPending, ParticipantStatusApproved, ParticipantStatusRejected:
		return true
	default:
		return false
	}
}
