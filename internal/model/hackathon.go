package model

import "time"

// Hackathon represents a hackathon event and its operational configuration
type Hackathon struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	StartsOn    time.Time  `json:"starts_on"`
	EndsOn      time.Time  `json:"ends_on"`
	Status      string     `json:"status"`
	Formation   RuleSet    `json:"formation"`
	LastRunOn   *time.Time `json:"last_run_on,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
	// Computed fields
	ParticipantCount int `json:"participant_count,omitempty"`
}

// Hackathon status constants
const (
	HackathonStatusDraft        = "draft"
	HackathonStatusRegistration = "registration"
	HackathonStatusRunning      = "running"
	HackathonStatusJudging      = "judging"
	HackathonStatusCompleted    = "completed"
)

// RuleSet declares how teams are formed for a hackathon.
// It replaces the untyped settings blob of earlier iterations: every field is
// validated once at the boundary before an assignment run starts.
type RuleSet struct {
	IdealTeamSize     int         `json:"ideal_team_size"`
	MinTeamSize       int         `json:"min_team_size"`
	MaxTeamSize       int         `json:"max_team_size"`
	AllowPartialTeams bool        `json:"allow_partial_teams"`
	QuotaRules        []QuotaRule `json:"quota_rules,omitempty"`
}

// QuotaRule caps how many participants with a given role attribute may land
// in one team. Lower priority values are applied first.
type QuotaRule struct {
	AttributeValue string `json:"attribute_value"`
	MaxPerTeam     int    `json:"max_per_team"`
	Mode           string `json:"mode"`
	Priority       int    `json:"priority"`
}

// QuotaModeCapped is the only recognized distribution mode: each team receives
// matching participants round-robin, capped at MaxPerTeam occurrences.
const QuotaModeCapped = "capped"

// DefaultRuleSet provides a sensible starting configuration
var DefaultRuleSet = RuleSet{
	IdealTeamSize:     4,
	MinTeamSize:       3,
	MaxTeamSize:       5,
	AllowPartialTeams: true,
}

// Constraints
const (
	MaxHackathonNameLength = 120
	MaxHackathonDescLength = 2000
	MaxQuotaRulesPerEvent  = 10
)

// CreateHackathonRequest represents a request to create a hackathon
type CreateHackathonRequest struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	StartsOn    time.Time `json:"starts_on"`
	EndsOn      time.Time `json:"ends_on"`
	Formation   *RuleSet  `json:"formation,omitempty"` // Defaults to DefaultRuleSet
}

// UpdateHackathonRequest represents a partial update to a hackathon
type UpdateHackathonRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	StartsOn    *time.Time `json:"starts_on,omitempty"`
	EndsOn      *time.Time `json:"ends_on,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Formation   *RuleSet   `json:"formation,omitempty"`
}

// IsValidHackathonStatus reports whether s is a known hackathon status
func IsValidHackathonStatus(s string) bool {
	switch s {
	case HackathonStatusDraft, HackathonStatusRegistration, HackathonStatusRunning,
		HackathonStatusJudging, HackathonStatusCompleted:
		return true
	default:
		return false
	}
}
