package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hastma/hastma-cup/models"
)

func TestValidHexColor(t *testing.T) {
	assert.True(t, ValidHexColor("#1a2B3c"))
	assert.True(t, ValidHexColor("#000000"))
	assert.False(t, ValidHexColor("1a2B3c"))
	assert.False(t, ValidHexColor("#1a2B3"))
	assert.False(t, ValidHexColor("#1a2B3cg"))
	assert.False(t, ValidHexColor("#ggg000"))
}

func TestCreateTeam(t *testing.T) {
	doc := &models.Tournament{}

	require.NoError(t, CreateTeam(doc, models.Team{ID: "t1", Name: "Alpha", Group: "A", Color: "#ff0000"}))
	require.Len(t, doc.Teams, 1)
	assert.NotNil(t, doc.Teams[0].Players, "roster is never nil")

	require.ErrorIs(t, CreateTeam(doc, models.Team{ID: "t1", Name: "Dup"}), ErrDuplicateTeamID)
	require.ErrorIs(t, CreateTeam(doc, models.Team{Name: "NoID"}), ErrValidation)
	require.ErrorIs(t, CreateTeam(doc, models.Team{ID: "t2", Name: "Bad", Color: "red"}), ErrValidation)
	assert.Len(t, doc.Teams, 1)
}

func TestDeleteTeam_NoCascade(t *testing.T) {
	doc := &models.Tournament{}
	require.NoError(t, CreateTeam(doc, models.Team{ID: "t1", Name: "Alpha"}))
	home, away := "t1", "t2"
	doc.Matches = append(doc.Matches, models.Match{
		ID: "m1", Stage: models.StageGroup, HomeTeam: &home, AwayTeam: &away,
		Date: "2026-06-01", Time: "10:00", Status: models.StatusScheduled,
	})

	require.NoError(t, DeleteTeam(doc, "t1"))
	assert.Empty(t, doc.Teams)
	// The match keeps its dangling reference.
	assert.Equal(t, "t1", doc.Matches[0].HomeTeamID())

	require.ErrorIs(t, DeleteTeam(doc, "t1"), ErrTeamNotFound)
}

func TestCreateMatch_ForcesCleanState(t *testing.T) {
	doc := &models.Tournament{}

	err := CreateMatch(doc, models.Match{
		ID: "m1", Stage: models.StageGroup, Date: "2026-06-01", Time: "10:00",
		Status: models.StatusFinished, HomeScore: 3, AwayScore: 2,
		Events: []models.Event{{Type: models.EventGoal, TeamID: "t1"}},
	})
	require.NoError(t, err)

	m := doc.Matches[0]
	assert.Equal(t, models.StatusScheduled, m.Status)
	assert.Equal(t, 0, m.HomeScore)
	assert.Equal(t, 0, m.AwayScore)
	assert.Empty(t, m.Events)

	require.ErrorIs(t, CreateMatch(doc, models.Match{ID: "m1", Date: "2026-06-01", Time: "11:00"}), ErrDuplicateMatchID)
	require.ErrorIs(t, CreateMatch(doc, models.Match{ID: "m2"}), ErrValidation)
}

func TestSetCaptain_SingleCaptainInvariant(t *testing.T) {
	team := models.Team{
		ID:   "t1",
		Name: "Alpha",
		Players: []models.Player{
			{Number: 1, Name: "One", IsCaptain: true},
			{Number: 2, Name: "Two"},
		},
	}

	require.NoError(t, SetCaptain(&team, 1))
	assert.False(t, team.Players[0].IsCaptain)
	assert.True(t, team.Players[1].IsCaptain)

	captain, ok := team.Captain()
	require.True(t, ok)
	assert.Equal(t, 2, captain.Number)

	// Setting the current captain again toggles the flag off.
	require.NoError(t, SetCaptain(&team, 1))
	_, ok = team.Captain()
	assert.False(t, ok)

	require.ErrorIs(t, SetCaptain(&team, 5), ErrValidation)
}
