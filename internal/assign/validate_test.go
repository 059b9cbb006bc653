package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func team(ids ...string) []Participant {
	members := make([]Participant, len(ids))
	for i, id := range ids {
		members[i] = Participant{ID: id, Attribute: "developer"}
	}
	return members
}

func TestValidateTeams_KeepsUndersizedWithWarning(t *testing.T) {
	t.Parallel()

	teams := [][]Participant{
		team("a", "b", "c"),
		team("d", "e"),
	}
	rules := RuleSet{IdealTeamSize: 3, MinTeamSize: 3, MaxTeamSize: 4, AllowPartialTeams: true}

	result := validateTeams(teams, rules)

	require.Len(t, result.Teams, 2)
	assert.Empty(t, result.Unassigned)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "team 2")
	assert.Contains(t, result.Warnings[0], "below the minimum of 3")
}

func TestValidateTeams_DissolvesUndersizedWhenPartialsDisallowed(t *testing.T) {
	t.Parallel()

	teams := [][]Participant{
		team("a", "b", "c"),
		team("d", "e"),
		team("f", "g", "h"),
	}
	rules := RuleSet{IdealTeamSize: 3, MinTeamSize: 3, MaxTeamSize: 4, AllowPartialTeams: false}

	result := validateTeams(teams, rules)

	require.Len(t, result.Teams, 2)
	assert.Equal(t, 1, result.Teams[0].Number)
	assert.Equal(t, 2, result.Teams[1].Number)
	assert.Equal(t, []string{"a", "b", "c"}, memberIDs(result.Teams[0].Members))
	assert.Equal(t, []string{"f", "g", "h"}, memberIDs(result.Teams[1].Members))

	assert.Equal(t, []string{"d", "e"}, memberIDs(result.Unassigned))
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "dissolved")
}

func TestValidateTeams_SkipsEmptySlots(t *testing.T) {
	t.Parallel()

	teams := [][]Participant{
		team("a", "b", "c"),
		nil,
		team("d", "e", "f"),
	}
	rules := RuleSet{IdealTeamSize: 3, MinTeamSize: 3, MaxTeamSize: 4}

	result := validateTeams(teams, rules)

	require.Len(t, result.Teams, 2)
	assert.Equal(t, 1, result.Teams[0].Number)
	assert.Equal(t, 2, result.Teams[1].Number)
	assert.Empty(t, result.Warnings)
}

func TestValidateTeams_AlwaysPopulatesReportFields(t *testing.T) {
	t.Parallel()

	result := validateTeams(nil, RuleSet{IdealTeamSize: 3, MinTeamSize: 3, MaxTeamSize: 4})

	assert.NotNil(t, result.Teams)
	assert.NotNil(t, result.Unassigned)
	assert.NotNil(t, result.Warnings)
}
