package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hastma/hastma-cup/models"
)

func groupOf(g string) *string { return &g }

func finishedGroupMatch(id, group, home, away string, homeScore, awayScore int, events ...models.Event) models.Match {
	return models.Match{
		ID:        id,
		Stage:     models.StageGroup,
		Group:     groupOf(group),
		HomeTeam:  &home,
		AwayTeam:  &away,
		Status:    models.StatusFinished,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Events:    events,
	}
}

func threeTeams(group string) []models.Team {
	return []models.Team{
		{ID: "t1", Name: "Alpha", Group: group},
		{ID: "t2", Name: "Bravo", Group: group},
		{ID: "t3", Name: "Casa", Group: group},
	}
}

func TestComputeStandings_PointsAndRecord(t *testing.T) {
	teams := threeTeams("A")
	matches := []models.Match{
		finishedGroupMatch("m1", "A", "t1", "t2", 2, 0),
		finishedGroupMatch("m2", "A", "t1", "t3", 1, 1),
		finishedGroupMatch("m3", "A", "t2", "t3", 0, 3),
	}

	rows := ComputeStandings(teams, matches, "A")
	require.Len(t, rows, 3)

	// t1 and t3 both have 4 points; t3 leads on goal difference (+3 vs +2).
	assert.Equal(t, "t3", rows[0].Team.ID)
	assert.Equal(t, 4, rows[0].Points)
	assert.Equal(t, "t1", rows[1].Team.ID)
	assert.Equal(t, 4, rows[1].Points)
	assert.Equal(t, "t2", rows[2].Team.ID)
	assert.Equal(t, 0, rows[2].Points)

	assert.Equal(t, 2, rows[1].Played)
	assert.Equal(t, 1, rows[1].Won)
	assert.Equal(t, 1, rows[1].Drawn)
	assert.Equal(t, 0, rows[1].Lost)
}

func TestComputeStandings_IgnoresUnfinishedAndOtherStages(t *testing.T) {
	teams := threeTeams("A")
	live := finishedGroupMatch("m1", "A", "t1", "t2", 5, 0)
	live.Status = models.StatusLive
	semi := finishedGroupMatch("m2", "A", "t1", "t3", 4, 0)
	semi.Stage = models.StageSemi

	rows := ComputeStandings(teams, []models.Match{live, semi}, "A")
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 0, row.Played, "team %s", row.Team.ID)
		assert.Equal(t, 0, row.Points)
	}
}

func TestComputeStandings_SkipsMatchWithMissingTeam(t *testing.T) {
	teams := threeTeams("A")
	matches := []models.Match{
		finishedGroupMatch("m1", "A", "t1", "ghost", 2, 0),
	}

	rows := ComputeStandings(teams, matches, "A")
	require.Len(t, rows, 3)
	assert.Equal(t, 0, rows[0].Played)
}

func TestComputeStandings_FairPlayTiebreak(t *testing.T) {
	teams := threeTeams("A")
	// Identical records for t1 and t2, but t2 picked up a red card.
	matches := []models.Match{
		finishedGroupMatch("m1", "A", "t1", "t3", 1, 0),
		finishedGroupMatch("m2", "A", "t2", "t3", 1, 0,
			models.Event{Type: models.EventRed, TeamID: "t2", Minute: 40},
		),
	}

	rows := ComputeStandings(teams, matches, "A")
	require.Len(t, rows, 3)
	assert.Equal(t, "t1", rows[0].Team.ID)
	assert.Equal(t, "t2", rows[1].Team.ID)
	assert.Equal(t, 2, rows[1].FairPlayPoints)
}

func TestComputeStandings_NameTiebreakIsDeterministic(t *testing.T) {
	teams := threeTeams("A")

	first := ComputeStandings(teams, nil, "A")
	second := ComputeStandings(teams, nil, "A")

	require.Equal(t, first, second)
	assert.Equal(t, "Alpha", first[0].Team.Name)
	assert.Equal(t, "Bravo", first[1].Team.Name)
	assert.Equal(t, "Casa", first[2].Team.Name)
}

func TestComputeStandings_CardsFromForeignTeamIgnored(t *testing.T) {
	teams := threeTeams("A")
	matches := []models.Match{
		finishedGroupMatch("m1", "A", "t1", "t2", 0, 0,
			models.Event{Type: models.EventYellow, TeamID: "nobody", Minute: 10},
		),
	}

	rows := ComputeStandings(teams, matches, "A")
	for _, row := range rows {
		assert.Equal(t, 0, row.FairPlayPoints)
	}
}

func TestGroupFinished(t *testing.T) {
	assert.False(t, GroupFinished(nil, "A"), "empty group is not finished")

	m := finishedGroupMatch("m1", "A", "t1", "t2", 1, 0)
	assert.True(t, GroupFinished([]models.Match{m}, "A"))

	m.Status = models.StatusLive
	assert.False(t, GroupFinished([]models.Match{m}, "A"))

	// A finished match of another group does not finish group A.
	other := finishedGroupMatch("m2", "B", "t1", "t2", 1, 0)
	assert.False(t, GroupFinished([]models.Match{other}, "A"))
}
