package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hastma/hastma-cup/models"
)

func liveMatch() models.Match {
	m := scheduledMatch("m1")
	m.Status = models.StatusLive
	return m
}

func TestAddEvent_GoalIncrementsMatchingSide(t *testing.T) {
	m := liveMatch()

	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 4}))
	assert.Equal(t, 1, m.HomeScore)
	assert.Equal(t, 0, m.AwayScore)

	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t2", Minute: 7}))
	assert.Equal(t, 1, m.HomeScore)
	assert.Equal(t, 1, m.AwayScore)

	assert.Len(t, m.Events, 2)
}

func TestAddEvent_CardDoesNotScore(t *testing.T) {
	m := liveMatch()

	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventYellow, TeamID: "t1", Minute: 4}))
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventRed, TeamID: "t2", Minute: 6}))
	assert.Equal(t, 0, m.HomeScore)
	assert.Equal(t, 0, m.AwayScore)
	assert.Len(t, m.Events, 2)
}

func TestAddEvent_ForeignTeamRecordedWithoutScoring(t *testing.T) {
	m := liveMatch()
	event := models.Event{Type: models.EventGoal, TeamID: "outsider", Minute: 10}

	assert.True(t, ForeignTeam(&m, event))
	require.NoError(t, AddEvent(&m, event))
	assert.Equal(t, 0, m.HomeScore)
	assert.Equal(t, 0, m.AwayScore)
	assert.Len(t, m.Events, 1, "foreign events still land in the ledger")
}

func TestAddEvent_RejectedWhenNotInPlay(t *testing.T) {
	for _, status := range []models.MatchStatus{models.StatusScheduled, models.StatusFinished} {
		m := scheduledMatch("m1")
		m.Status = status

		err := AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 1})
		require.ErrorIs(t, err, ErrMatchNotLive, "status %s", status)
		assert.Empty(t, m.Events)
		assert.Equal(t, 0, m.HomeScore)
	}
}

func TestAddEvent_Validation(t *testing.T) {
	m := liveMatch()

	require.ErrorIs(t, AddEvent(&m, models.Event{Type: models.EventGoal, Minute: 1}), ErrValidation)
	require.ErrorIs(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: -1}), ErrValidation)
	assert.Empty(t, m.Events)
}

func TestRemoveEvent_GoalSymmetry(t *testing.T) {
	m := liveMatch()
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 4}))
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t2", Minute: 8}))

	require.NoError(t, RemoveEvent(&m, 0))
	assert.Equal(t, 0, m.HomeScore)
	assert.Equal(t, 1, m.AwayScore)
	assert.Len(t, m.Events, 1)
	assert.Equal(t, "t2", m.Events[0].TeamID)
}

func TestRemoveEvent_FloorsAtZero(t *testing.T) {
	m := liveMatch()
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 4}))
	// Manual override dragged the score below the ledger.
	m.HomeScore = 0

	require.NoError(t, RemoveEvent(&m, 0))
	assert.Equal(t, 0, m.HomeScore, "removal never drives a score negative")
}

func TestRemoveEvent_IndexOutOfRange(t *testing.T) {
	m := liveMatch()
	require.ErrorIs(t, RemoveEvent(&m, 0), ErrEventIndexOutOfRange)
	require.ErrorIs(t, RemoveEvent(&m, -1), ErrEventIndexOutOfRange)
}

func TestUpdateEvent_ReattributionRecomputesBothSides(t *testing.T) {
	m := liveMatch()
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 4}))
	require.Equal(t, 1, m.HomeScore)

	// Correction: the goal was actually scored by the away side.
	require.NoError(t, UpdateEvent(&m, 0, models.Event{Type: models.EventGoal, TeamID: "t2", Minute: 4}))
	assert.Equal(t, 0, m.HomeScore)
	assert.Equal(t, 1, m.AwayScore)
}

func TestUpdateEvent_TypeChangeRecomputes(t *testing.T) {
	m := liveMatch()
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 4}))

	// Downgrading a goal to a yellow card removes it from the score.
	require.NoError(t, UpdateEvent(&m, 0, models.Event{Type: models.EventYellow, TeamID: "t1", Minute: 4}))
	assert.Equal(t, 0, m.HomeScore)
}

func TestRecomputeScore_OverridesManualChannel(t *testing.T) {
	m := liveMatch()
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 4}))
	require.NoError(t, AddEvent(&m, models.Event{Type: models.EventGoal, TeamID: "t1", Minute: 9}))
	require.NoError(t, AdjustScore(&m, "home", 3))
	require.NoError(t, AdjustScore(&m, "away", 1))

	RecomputeScore(&m)
	assert.Equal(t, 2, m.HomeScore)
	assert.Equal(t, 0, m.AwayScore)
}
