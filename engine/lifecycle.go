package engine

import (
	"fmt"

	"github.com/hastma/hastma-cup/models"
)

// allowedTransitions is the match status machine. halftime is an
// optional in-play substate; finished -> scheduled is the destructive
// "unfinish" rollback performed by SetStatus.
var allowedTransitions = map[models.MatchStatus][]models.MatchStatus{
	models.StatusScheduled: {models.StatusLive, models.StatusHalftime},
	models.StatusLive:      {models.StatusHalftime, models.StatusFinished},
	models.StatusHalftime:  {models.StatusLive, models.StatusFinished},
	models.StatusFinished:  {models.StatusScheduled},
}

// CanTransition reports whether from -> to is a legal edge. A
// same-status transition is a permitted no-op.
func CanTransition(from, to models.MatchStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is one of the four match statuses.
func ValidStatus(s models.MatchStatus) bool {
	switch s {
	case models.StatusScheduled, models.StatusLive, models.StatusHalftime, models.StatusFinished:
		return true
	}
	return false
}

// liveConflict reports whether any match other than matchID is in play.
func liveConflict(doc *models.Tournament, matchID string) bool {
	for i := range doc.Matches {
		m := &doc.Matches[i]
		if m.ID != matchID && m.Status.InPlay() {
			return true
		}
	}
	return false
}

// SetStatus moves a match through the status machine. Going in play is
// rejected while any other match is in play (one physical pitch).
// finished -> scheduled resets the score to 0-0 and clears the ledger.
// On error the document is left unchanged.
func SetStatus(doc *models.Tournament, matchID string, next models.MatchStatus) error {
	match, ok := doc.MatchByID(matchID)
	if !ok {
		return ErrMatchNotFound
	}
	if !ValidStatus(next) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}
	if match.Status == next {
		return nil
	}
	if !CanTransition(match.Status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, match.Status, next)
	}
	if next.InPlay() && !match.Status.InPlay() && liveConflict(doc, matchID) {
		return ErrLiveConflict
	}

	if match.Status == models.StatusFinished && next == models.StatusScheduled {
		// Unfinish: destructive rollback, not a reverse transition.
		match.HomeScore = 0
		match.AwayScore = 0
		match.Events = []models.Event{}
	}
	match.Status = next
	return nil
}

// Finish completes an in-play match. The caller re-runs the bracket
// resolver afterwards.
func Finish(doc *models.Tournament, matchID string) error {
	return SetStatus(doc, matchID, models.StatusFinished)
}

// Unfinish rolls a finished match back to scheduled, clearing its
// result. Already-propagated bracket assignments are not retracted
// here; the caller re-runs the resolver immediately.
func Unfinish(doc *models.Tournament, matchID string) error {
	match, ok := doc.MatchByID(matchID)
	if !ok {
		return ErrMatchNotFound
	}
	if match.Status != models.StatusFinished {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, match.Status, models.StatusScheduled)
	}
	return SetStatus(doc, matchID, models.StatusScheduled)
}

// AdjustScore is the manual +/- override channel. It is permitted in
// any status and deliberately independent of the event ledger; use
// RecomputeScore to reconcile the two.
func AdjustScore(match *models.Match, side string, delta int) error {
	switch side {
	case "home":
		match.HomeScore = max(0, match.HomeScore+delta)
	case "away":
		match.AwayScore = max(0, match.AwayScore+delta)
	default:
		return fmt.Errorf("%w: side must be home or away", ErrValidation)
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
