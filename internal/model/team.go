package model

import "time"

// Team represents a formed team produced by an assignment run. Member order
// reflects assignment order (quota-claimed members first, then remainder),
// which keeps repeated runs over identical input byte-identical.
type Team struct {
	ID          string    `json:"id"`
	HackathonID string    `json:"hackathon_id"`
	Number      int       `json:"number"`
	MemberIDs   []string  `json:"member_ids"`
	CreatedOn   time.Time `json:"created_on"`
	// Populated fields
	MemberNames []string `json:"member_names,omitempty"`
}

// Size returns the team's member count
func (t *Team) Size() int {
	return len(t.MemberIDs)
}

// AssignmentReport records the outcome of the most recent assignment run for
// a hackathon. UnassignedIDs and Warnings are always present, even when
// empty, so callers can distinguish "no leftovers" from "field omitted".
type AssignmentReport struct {
	ID            string    `json:"id"`
	HackathonID   string    `json:"hackathon_id"`
	RanOn         time.Time `json:"ran_on"`
	TeamCount     int       `json:"team_count"`
	AssignedCount int       `json:"assigned_count"`
	UnassignedIDs []string  `json:"unassigned_ids"`
	Warnings      []string  `json:"warnings"`
}

// AssignmentView is the API shape returned after a run: the formed teams plus
// the report. Unassigned participants are returned in full so organizers can
// place them by hand.
type AssignmentView struct {
	Teams      []Team           `json:"teams"`
	Unassigned []Participant    `json:"unassigned"`
	Report     AssignmentReport `json:"report"`
}
