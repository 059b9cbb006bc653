package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeQuotas_FewerMatchesThanTeams(t *testing.T) {
	t.Parallel()

	// Two designers across five teams: the first two teams each get one,
	// the rest get none. No error, no warning.
	pool := makePool(map[string]int{"designer": 2, "developer": 10},
		[]string{"designer", "developer"})
	rules := RuleSet{
		IdealTeamSize: 3, MinTeamSize: 2, MaxTeamSize: 4,
		QuotaRules: []QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 1, Mode: ModeCapped, Priority: 0},
		},
	}
	teams := make([][]Participant, 5)

	claimed := distributeQuotas(pool, rules, teams)

	require.Len(t, teams[0], 1)
	require.Len(t, teams[1], 1)
	assert.Equal(t, "designer-1", teams[0][0].ID)
	assert.Equal(t, "designer-2", teams[1][0].ID)
	for i := 2; i < 5; i++ {
		assert.Empty(t, teams[i])
	}
	assert.Len(t, claimed, 2)
}

func TestDistributeQuotas_RoundRobinBeforeSeconds(t *testing.T) {
	t.Parallel()

	// With a cap of 2 and five designers over three teams, every team gets
	// one designer before any team gets a second.
	pool := makePool(map[string]int{"designer": 5}, []string{"designer"})
	rules := RuleSet{
		IdealTeamSize: 4, MinTeamSize: 2, MaxTeamSize: 5,
		QuotaRules: []QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 2, Mode: ModeCapped, Priority: 0},
		},
	}
	teams := make([][]Participant, 3)

	distributeQuotas(pool, rules, teams)

	assert.Equal(t, []string{"designer-1", "designer-4"}, memberIDs(teams[0]))
	assert.Equal(t, []string{"designer-2", "designer-5"}, memberIDs(teams[1]))
	assert.Equal(t, []string{"designer-3"}, memberIDs(teams[2]))
}

func TestDistributeQuotas_OverflowLeftUnclaimed(t *testing.T) {
	t.Parallel()

	// Matches beyond teamCount*MaxPerTeam are not claimed; the remainder
	// pass places them without attribute awareness.
	pool := makePool(map[string]int{"designer": 5}, []string{"designer"})
	rules := RuleSet{
		IdealTeamSize: 3, MinTeamSize: 2, MaxTeamSize: 4,
		QuotaRules: []QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 2, Mode: ModeCapped, Priority: 0},
		},
	}
	teams := make([][]Participant, 2)

	claimed := distributeQuotas(pool, rules, teams)

	assert.Len(t, claimed, 4)
	assert.False(t, claimed["designer-5"])
}

func TestDistributeQuotas_PriorityOrder(t *testing.T) {
	t.Parallel()

	// The pm rule has the lower priority value so it runs first even though
	// it is declared second; each team's first member is a pm.
	pool := makePool(map[string]int{"designer": 2, "pm": 2}, []string{"designer", "pm"})
	rules := RuleSet{
		IdealTeamSize: 3, MinTeamSize: 2, MaxTeamSize: 4,
		QuotaRules: []QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 1, Mode: ModeCapped, Priority: 5},
			{AttributeValue: "pm", MaxPerTeam: 1, Mode: ModeCapped, Priority: 1},
		},
	}
	teams := make([][]Participant, 2)

	distributeQuotas(pool, rules, teams)

	assert.Equal(t, []string{"pm-1", "designer-1"}, memberIDs(teams[0]))
	assert.Equal(t, []string{"pm-2", "designer-2"}, memberIDs(teams[1]))
}

func TestDistributeQuotas_EqualPriorityKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	pool := makePool(map[string]int{"designer": 1, "pm": 1}, []string{"pm", "designer"})
	rules := RuleSet{
		IdealTeamSize: 3, MinTeamSize: 2, MaxTeamSize: 4,
		QuotaRules: []QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 1, Mode: ModeCapped, Priority: 0},
			{AttributeValue: "pm", MaxPerTeam: 1, Mode: ModeCapped, Priority: 0},
		},
	}
	teams := make([][]Participant, 1)

	distributeQuotas(pool, rules, teams)

	assert.Equal(t, []string{"designer-1", "pm-1"}, memberIDs(teams[0]))
}

func TestDistributeQuotas_FirstRuleClaims(t *testing.T) {
	t.Parallel()

	// Two rules over the same attribute value: the first claims, the second
	// sees nothing left.
	pool := makePool(map[string]int{"designer": 2}, []string{"designer"})
	rules := RuleSet{
		IdealTeamSize: 3, MinTeamSize: 2, MaxTeamSize: 4,
		QuotaRules: []QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 1, Mode: ModeCapped, Priority: 0},
			{AttributeValue: "designer", MaxPerTeam: 2, Mode: ModeCapped, Priority: 1},
		},
	}
	teams := make([][]Participant, 2)

	distributeQuotas(pool, rules, teams)

	assert.Equal(t, []string{"designer-1"}, memberIDs(teams[0]))
	assert.Equal(t, []string{"designer-2"}, memberIDs(teams[1]))
}

func TestDistributeRemainder_RoundRobinInPoolOrder(t *testing.T) {
	t.Parallel()

	pool := makePool(map[string]int{"developer": 5}, []string{"developer"})
	teams := make([][]Participant, 2)

	distributeRemainder(pool, map[string]bool{"developer-2": true}, teams)

	assert.Equal(t, []string{"developer-1", "developer-4"}, memberIDs(teams[0]))
	assert.Equal(t, []string{"developer-3", "developer-5"}, memberIDs(teams[1]))
}

func memberIDs(members []Participant) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}
