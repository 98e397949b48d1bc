package engine

import (
	"fmt"
	"regexp"

	"github.com/hastma/hastma-cup/models"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHexColor reports whether s is a #RRGGBB color.
func ValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// CreateTeam appends a new team to the document. Ids are immutable and
// unique across the store.
func CreateTeam(doc *models.Tournament, team models.Team) error {
	if team.ID == "" || team.Name == "" {
		return fmt.Errorf("%w: team id and name are required", ErrValidation)
	}
	if _, ok := doc.TeamByID(team.ID); ok {
		return ErrDuplicateTeamID
	}
	if team.Color != "" && !ValidHexColor(team.Color) {
		return fmt.Errorf("%w: color must be a #RRGGBB hex string", ErrValidation)
	}
	if team.Players == nil {
		team.Players = []models.Player{}
	}
	doc.Teams = append(doc.Teams, team)
	return nil
}

// DeleteTeam removes a team without cascading: matches keep any
// dangling reference and display logic treats it as TBD.
func DeleteTeam(doc *models.Tournament, id string) error {
	for i := range doc.Teams {
		if doc.Teams[i].ID == id {
			doc.Teams = append(doc.Teams[:i], doc.Teams[i+1:]...)
			return nil
		}
	}
	return ErrTeamNotFound
}

// CreateMatch appends a new fixture with an empty ledger.
func CreateMatch(doc *models.Tournament, match models.Match) error {
	if match.ID == "" || match.Date == "" || match.Time == "" {
		return fmt.Errorf("%w: match id, date and time are required", ErrValidation)
	}
	if _, ok := doc.MatchByID(match.ID); ok {
		return ErrDuplicateMatchID
	}
	match.Status = models.StatusScheduled
	match.HomeScore = 0
	match.AwayScore = 0
	match.Events = []models.Event{}
	doc.Matches = append(doc.Matches, match)
	return nil
}

// SetCaptain marks one roster slot as captain, clearing any previous
// captain so at most one player per team carries the flag.
func SetCaptain(team *models.Team, playerIndex int) error {
	if playerIndex < 0 || playerIndex >= len(team.Players) {
		return fmt.Errorf("%w: player index %d", ErrValidation, playerIndex)
	}
	newState := !team.Players[playerIndex].IsCaptain
	if newState {
		for i := range team.Players {
			team.Players[i].IsCaptain = false
		}
	}
	team.Players[playerIndex].IsCaptain = newState
	return nil
}
