package engine

import "errors"

// Validation and conflict errors surfaced by engine operations. All of
// them leave the document untouched.
var (
	ErrValidation = errors.New("validation failed")

	ErrTeamNotFound  = errors.New("team not found")
	ErrMatchNotFound = errors.New("match not found")

	ErrDuplicateTeamID  = errors.New("team id already exists")
	ErrDuplicateMatchID = errors.New("match id already exists")

	// ErrLiveConflict: another match is already live or at halftime.
	// At most one match may be in play across the tournament.
	ErrLiveConflict = errors.New("another match is already live")

	ErrInvalidTransition = errors.New("invalid match status transition")

	// ErrMatchNotLive: events may only be registered while the match is
	// live or at halftime.
	ErrMatchNotLive = errors.New("match is not live")

	ErrEventIndexOutOfRange = errors.New("event index out of range")
)
