package engine

import (
	"fmt"

	"github.com/hastma/hastma-cup/models"
)

// AddEvent appends an event to the match ledger. Registration is only
// legal while the match is in play. A goal increments the cached score
// of whichever side the event's teamId matches; an event attributed to
// neither side is still recorded but leaves both scores untouched. The
// caller should log it as a data-quality concern (see ForeignTeam).
func AddEvent(match *models.Match, event models.Event) error {
	if !match.Status.InPlay() {
		return ErrMatchNotLive
	}
	if event.TeamID == "" {
		return fmt.Errorf("%w: event team id is required", ErrValidation)
	}
	if event.Minute < 0 {
		return fmt.Errorf("%w: event minute must be non-negative", ErrValidation)
	}
	match.Events = append(match.Events, event)
	if event.Type == models.EventGoal {
		switch event.TeamID {
		case match.HomeTeamID():
			match.HomeScore++
		case match.AwayTeamID():
			match.AwayScore++
		}
	}
	return nil
}

// RemoveEvent deletes the ledger entry at index. Removing a goal
// decrements the corresponding side with a floor of zero, so a
// desynchronized ledger can never drive a score negative.
func RemoveEvent(match *models.Match, index int) error {
	if index < 0 || index >= len(match.Events) {
		return ErrEventIndexOutOfRange
	}
	event := match.Events[index]
	match.Events = append(match.Events[:index], match.Events[index+1:]...)
	if event.Type == models.EventGoal {
		switch event.TeamID {
		case match.HomeTeamID():
			match.HomeScore = max(0, match.HomeScore-1)
		case match.AwayTeamID():
			match.AwayScore = max(0, match.AwayScore-1)
		}
	}
	return nil
}

// UpdateEvent replaces the ledger entry at index, then recomputes both
// scores from the full ledger. Corrections may change goal attribution,
// so incremental patching is not trusted here.
func UpdateEvent(match *models.Match, index int, event models.Event) error {
	if index < 0 || index >= len(match.Events) {
		return ErrEventIndexOutOfRange
	}
	if event.TeamID == "" {
		return fmt.Errorf("%w: event team id is required", ErrValidation)
	}
	if event.Minute < 0 {
		return fmt.Errorf("%w: event minute must be non-negative", ErrValidation)
	}
	match.Events[index] = event
	RecomputeScore(match)
	return nil
}

// RecomputeScore rebuilds the cached score as the count of goal events
// per side. It is the canonical reconciliation for the manual-override
// channel and for corrections.
func RecomputeScore(match *models.Match) {
	home, away := 0, 0
	for _, e := range match.Events {
		if e.Type != models.EventGoal {
			continue
		}
		switch e.TeamID {
		case match.HomeTeamID():
			home++
		case match.AwayTeamID():
			away++
		}
	}
	match.HomeScore = home
	match.AwayScore = away
}

// ForeignTeam reports whether the event's teamId belongs to neither
// competing side of the match.
func ForeignTeam(match *models.Match, event models.Event) bool {
	return event.TeamID != match.HomeTeamID() && event.TeamID != match.AwayTeamID()
}
