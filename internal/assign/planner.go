package assign

// planTeamCount derives how many teams to create.
//
// When capped quota rules exist, the candidate is the minimum over all such
// rules of floor(matching / maxPerTeam): a team cannot be formed once any
// capped role runs out. This minimum can discard eligible participants
// outside the binding category into the remainder pool even when relaxing a
// rule would have allowed more teams; that trade-off is deliberate and
// matches how organizers configure quotas.
//
// Without capped rules the candidate is ceil(pool / idealTeamSize). Either
// way the candidate is clamped so each team can average at least MinTeamSize
// members.
func planTeamCount(pool []Participant, rules RuleSet) (int, error) {
	candidate := 0

	if len(rules.QuotaRules) > 0 {
		counts := make(map[string]int)
		for _, p := range pool {
			counts[p.Attribute]++
		}
		first := true
		for _, rule := range rules.QuotaRules {
			byRule := counts[rule.AttributeValue] / rule.MaxPerTeam
			if first || byRule < candidate {
				candidate = byRule
			}
			first = false
		}
	} else {
		candidate = (len(pool) + rules.IdealTeamSize - 1) / rules.IdealTeamSize
	}

	// Reduce the count rather than spread everyone too thin
	if candidate*rules.MinTeamSize > len(pool) {
		candidate = len(pool) / rules.MinTeamSize
	}

	if candidate <= 0 {
		return 0, &InsufficientParticipantsError{MinTeamSize: rules.MinTeamSize}
	}
	return candidate, nil
}
