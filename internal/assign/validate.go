package assign

import "fmt"

// validateTeams applies the minimum-size policy and produces the final
// result. With AllowPartialTeams, every non-empty team survives and
// undersized ones are flagged; without it, undersized teams are dissolved
// and their members reported as unassigned. Survivors are renumbered to a
// dense 1..K sequence preserving relative order.
func validateTeams(teams [][]Participant, rules RuleSet) *Result {
	result := &Result{
		Teams:      make([]Team, 0, len(teams)),
		Unassigned: []Participant{},
		Warnings:   []string{},
	}

	number := 1
	for i, members := range teams {
		if len(members) == 0 {
			continue
		}

		if len(members) < rules.MinTeamSize {
			if rules.AllowPartialTeams {
				result.Teams = append(result.Teams, Team{Number: number, Members: members})
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("team %d has %d members, below the minimum of %d", number, len(members), rules.MinTeamSize))
				number++
			} else {
				result.Unassigned = append(result.Unassigned, members...)
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("team %d was dissolved: %d members is below the minimum of %d", i+1, len(members), rules.MinTeamSize))
			}
			continue
		}

		result.Teams = append(result.Teams, Team{Number: number, Members: members})
		number++
	}

	return result
}
