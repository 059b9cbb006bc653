package assign

import (
	"errors"
	"fmt"
)

// ErrInvalidRuleSet is wrapped by all rule-set validation failures
var ErrInvalidRuleSet = errors.New("invalid rule set")

// InsufficientParticipantsError indicates the pool cannot form even one team
// under the rule set. It is terminal for the current pool; callers retry only
// after the pool or the rules change.
type InsufficientParticipantsError struct {
	MinTeamSize int
}

func (e *InsufficientParticipantsError) Error() string {
	return fmt.Sprintf("not enough participants to form a team of at least %d", e.MinTeamSize)
}

// Participant is an assignable pool member. The engine never mutates
// participants; it only places them on teams.
type Participant struct {
	ID          string
	Attribute   string
	DisplayName string
}

// ModeCapped is the only recognized quota distribution mode: matching
// participants are spread one per team per round, capped at MaxPerTeam.
const ModeCapped = "capped"

// QuotaRule caps occurrences of one attribute value per team. Rules with a
// lower Priority are applied first; declaration order breaks ties.
type QuotaRule struct {
	AttributeValue string
	MaxPerTeam     int
	Mode           string
	Priority       int
}

// RuleSet declares how teams are formed
type RuleSet struct {
	IdealTeamSize     int
	MinTeamSize       int
	MaxTeamSize       int
	AllowPartialTeams bool
	QuotaRules        []QuotaRule
}

// Validate checks the rule set invariants. It fails fast before any
// assignment work begins, rejecting unknown quota modes explicitly rather
// than silently defaulting.
func (rs RuleSet) Validate() error {
	if rs.IdealTeamSize <= 0 {
		return fmt.Errorf("%w: ideal team size must be positive, got %d", ErrInvalidRuleSet, rs.IdealTeamSize)
	}
	if rs.MinTeamSize <= 0 {
		return fmt.Errorf("%w: minimum team size must be positive, got %d", ErrInvalidRuleSet, rs.MinTeamSize)
	}
	if rs.MinTeamSize > rs.IdealTeamSize {
		return fmt.Errorf("%w: minimum team size %d exceeds ideal team size %d", ErrInvalidRuleSet, rs.MinTeamSize, rs.IdealTeamSize)
	}
	if rs.MaxTeamSize < rs.IdealTeamSize {
		return fmt.Errorf("%w: maximum team size %d is below ideal team size %d", ErrInvalidRuleSet, rs.MaxTeamSize, rs.IdealTeamSize)
	}
	for i, rule := range rs.QuotaRules {
		if rule.Mode != ModeCapped {
			return fmt.Errorf("%w: quota rule %d has unrecognized mode %q", ErrInvalidRuleSet, i, rule.Mode)
		}
		if rule.MaxPerTeam <= 0 {
			return fmt.Errorf("%w: quota rule %d for %q must allow at least one per team", ErrInvalidRuleSet, i, rule.AttributeValue)
		}
		if rule.AttributeValue == "" {
			return fmt.Errorf("%w: quota rule %d has an empty attribute value", ErrInvalidRuleSet, i)
		}
	}
	return nil
}

// Team is a formed team. Numbers are dense 1..K with no gaps; member order
// is assignment order.
type Team struct {
	Number  int
	Members []Participant
}

// Result is the complete outcome of a run. Unassigned and Warnings are never
// nil, so an empty report is distinguishable from an omitted one.
type Result struct {
	Teams      []Team
	Unassigned []Participant
	Warnings   []string
}

// Invoke partitions pool into teams under rules. It returns an error only
// for an invalid rule set or a pool too small to form one team; undersized
// teams and leftover participants are reported in the Result, never as an
// error. The caller is expected to hand the engine a freshly unassigned
// pool; the engine does not inspect or tear down prior assignments.
func Invoke(pool []Participant, rules RuleSet) (*Result, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	teamCount, err := planTeamCount(pool, rules)
	if err != nil {
		return nil, err
	}

	teams := make([][]Participant, teamCount)
	claimed := distributeQuotas(pool, rules, teams)
	distributeRemainder(pool, claimed, teams)

	return validateTeams(teams, rules), nil
}
