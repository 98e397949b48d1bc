package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hastma/hastma-cup/models"
)

// bracketDoc builds a two-group document: four teams per the minimum a
// bracket needs, all group matches finished with clear results.
//
// Group A: a1 beats a2. Group B: b1 beats b2.
func bracketDoc() *models.Tournament {
	teams := []models.Team{
		{ID: "a1", Name: "A One", Group: "A"},
		{ID: "a2", Name: "A Two", Group: "A"},
		{ID: "b1", Name: "B One", Group: "B"},
		{ID: "b2", Name: "B Two", Group: "B"},
	}
	matches := []models.Match{
		finishedGroupMatch("ga", "A", "a1", "a2", 2, 0),
		finishedGroupMatch("gb", "B", "b1", "b2", 3, 1),
		{ID: "sf1", Stage: models.StageSemi, Status: models.StatusScheduled, Date: "2026-06-01", Time: "10:00"},
		{ID: "sf2", Stage: models.StageSemi, Status: models.StatusScheduled, Date: "2026-06-01", Time: "11:00"},
		{ID: "3rd", Stage: models.StageThirdPlace, Status: models.StatusScheduled, Date: "2026-06-01", Time: "12:00"},
		{ID: "f", Stage: models.StageFinal, Status: models.StatusScheduled, Date: "2026-06-01", Time: "13:00"},
	}
	return &models.Tournament{Teams: teams, Matches: matches}
}

func matchByID(t *testing.T, doc *models.Tournament, id string) *models.Match {
	t.Helper()
	m, ok := doc.MatchByID(id)
	require.True(t, ok, "match %s", id)
	return m
}

func TestResolveBracket_SemifinalPairing(t *testing.T) {
	doc := bracketDoc()

	changed := ResolveBracket(doc)
	require.True(t, changed)

	sf1 := matchByID(t, doc, "sf1")
	sf2 := matchByID(t, doc, "sf2")

	// SF1: group-A winner hosts group-B runner-up.
	assert.Equal(t, "a1", sf1.HomeTeamID())
	assert.Equal(t, "b2", sf1.AwayTeamID())
	// SF2: group-B winner hosts group-A runner-up.
	assert.Equal(t, "b1", sf2.HomeTeamID())
	assert.Equal(t, "a2", sf2.AwayTeamID())
}

func TestResolveBracket_NoAssignmentWhileGroupUnfinished(t *testing.T) {
	doc := bracketDoc()
	ga := matchByID(t, doc, "ga")
	ga.Status = models.StatusLive

	ResolveBracket(doc)

	sf1 := matchByID(t, doc, "sf1")
	sf2 := matchByID(t, doc, "sf2")
	// Group A slots stay empty, group B slots resolve independently.
	assert.Nil(t, sf1.HomeTeam)
	assert.Equal(t, "b2", sf1.AwayTeamID())
	assert.Equal(t, "b1", sf2.HomeTeamID())
	assert.Nil(t, sf2.AwayTeam)
}

func TestResolveBracket_Idempotent(t *testing.T) {
	doc := bracketDoc()

	require.True(t, ResolveBracket(doc))
	assert.False(t, ResolveBracket(doc), "second run changes nothing")
}

func TestResolveBracket_FinalAndThirdFromSemis(t *testing.T) {
	doc := bracketDoc()
	ResolveBracket(doc)

	sf1 := matchByID(t, doc, "sf1")
	sf1.Status = models.StatusFinished
	sf1.HomeScore, sf1.AwayScore = 2, 1 // a1 wins

	sf2 := matchByID(t, doc, "sf2")
	sf2.Status = models.StatusFinished
	sf2.HomeScore, sf2.AwayScore = 0, 1 // a2 wins

	require.True(t, ResolveBracket(doc))

	final := matchByID(t, doc, "f")
	third := matchByID(t, doc, "3rd")
	assert.Equal(t, "a1", final.HomeTeamID(), "SF1 winner hosts the final")
	assert.Equal(t, "a2", final.AwayTeamID())
	assert.Equal(t, "b2", third.HomeTeamID(), "SF1 loser hosts the third-place match")
	assert.Equal(t, "b1", third.AwayTeamID())
}

func TestResolveBracket_OneSemiFinishedIsNotEnough(t *testing.T) {
	doc := bracketDoc()
	ResolveBracket(doc)

	sf1 := matchByID(t, doc, "sf1")
	sf1.Status = models.StatusFinished
	sf1.HomeScore = 1

	ResolveBracket(doc)

	final := matchByID(t, doc, "f")
	assert.Nil(t, final.HomeTeam)
	assert.Nil(t, final.AwayTeam)
}

func TestResolveBracket_TiedSemiAssignsNothing(t *testing.T) {
	doc := bracketDoc()
	ResolveBracket(doc)

	for _, id := range []string{"sf1", "sf2"} {
		sf := matchByID(t, doc, id)
		sf.Status = models.StatusFinished
		sf.HomeScore, sf.AwayScore = 1, 1
	}

	assert.False(t, ResolveBracket(doc))
	final := matchByID(t, doc, "f")
	assert.Nil(t, final.HomeTeam)
	assert.Nil(t, final.AwayTeam)
}

func TestResolveBracket_NeverTouchesStartedKnockout(t *testing.T) {
	doc := bracketDoc()
	ResolveBracket(doc)

	sf1 := matchByID(t, doc, "sf1")
	sf1.Status = models.StatusLive

	// Reverse the group A result, changing the qualified teams.
	ga := matchByID(t, doc, "ga")
	ga.HomeScore, ga.AwayScore = 0, 2

	ResolveBracket(doc)

	// The in-play semifinal keeps its participants; the scheduled one
	// follows the new standings.
	assert.Equal(t, "a1", sf1.HomeTeamID())
	sf2 := matchByID(t, doc, "sf2")
	assert.Equal(t, "a1", sf2.AwayTeamID(), "a2 lost its runner-up slot to a1")
}

func TestResolveBracket_SemisOrderedByKickoff(t *testing.T) {
	doc := bracketDoc()
	// Swap kickoff times: "sf2" now starts first and becomes SF1.
	matchByID(t, doc, "sf1").Time = "15:00"

	ResolveBracket(doc)

	earlier := matchByID(t, doc, "sf2")
	assert.Equal(t, "a1", earlier.HomeTeamID())
	assert.Equal(t, "b2", earlier.AwayTeamID())
}

func TestResolveBracket_UnfinishRollsBackSlots(t *testing.T) {
	doc := bracketDoc()
	ResolveBracket(doc)

	// After unfinishing the group A decider the standings no longer
	// produce a finished group, so scheduled slots must not change
	// further; already-assigned slots are kept as-is.
	require.NoError(t, Unfinish(doc, "ga"))
	changed := ResolveBracket(doc)

	assert.False(t, changed)
	sf1 := matchByID(t, doc, "sf1")
	assert.Equal(t, "a1", sf1.HomeTeamID(), "existing assignment is kept, never nulled")
}
