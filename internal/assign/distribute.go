package assign

import "sort"

// distributeQuotas runs the quota pass: rules in ascending priority
// (declaration order breaks ties), matching participants in pool order,
// filled round-robin for up to MaxPerTeam rounds. Every team receives one
// matching participant before any team receives a second, and no team ever
// exceeds the rule's cap for that attribute value.
//
// Returns the set of claimed participant IDs. A participant claimed by one
// rule is never reconsidered by a later rule.
func distributeQuotas(pool []Participant, rules RuleSet, teams [][]Participant) map[string]bool {
	claimed := make(map[string]bool, len(pool))
	if len(teams) == 0 {
		return claimed
	}

	for _, rule := range orderedQuotaRules(rules) {
		// Gather unclaimed matches in pool order; no reshuffling, so
		// identical input yields identical output.
		var matching []Participant
		for _, p := range pool {
			if !claimed[p.ID] && p.Attribute == rule.AttributeValue {
				matching = append(matching, p)
			}
		}

		next := 0
		for round := 0; round < rule.MaxPerTeam && next < len(matching); round++ {
			for t := 0; t < len(teams) && next < len(matching); t++ {
				p := matching[next]
				next++
				teams[t] = append(teams[t], p)
				claimed[p.ID] = true
			}
		}
		// Matches beyond teamCount*MaxPerTeam stay unclaimed and fall
		// through to the remainder pass.
	}

	return claimed
}

// distributeRemainder walks the unclaimed participants in pool order and
// assigns them round-robin. This is a pure load-balancing pass with no
// attribute awareness: quota-claimed members sit first in each team, then
// remainder members in arrival order.
func distributeRemainder(pool []Participant, claimed map[string]bool, teams [][]Participant) {
	if len(teams) == 0 {
		return
	}
	next := 0
	for _, p := range pool {
		if claimed[p.ID] {
			continue
		}
		teams[next%len(teams)] = append(teams[next%len(teams)], p)
		next++
	}
}

// orderedQuotaRules returns the rules sorted by ascending priority. The sort
// is stable so ties keep declaration order, first declared wins.
func orderedQuotaRules(rules RuleSet) []QuotaRule {
	ordered := make([]QuotaRule, len(rules.QuotaRules))
	copy(ordered, rules.QuotaRules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	return ordered
}
