package engine

import (
	"sort"

	"github.com/hastma/hastma-cup/models"
)

// Knockout groups the bracket matches of a document: the two
// semifinals ordered by kickoff, the final and the third-place match.
// Any of them may be nil when no such fixture exists.
type Knockout struct {
	Semi1 *models.Match
	Semi2 *models.Match
	Final *models.Match
	Third *models.Match
}

// FindKnockout locates the bracket fixtures by stage. Semifinal order
// is kickoff order, so operator-renamed match ids keep resolving.
func FindKnockout(doc *models.Tournament) Knockout {
	var semis []*models.Match
	var k Knockout
	for i := range doc.Matches {
		m := &doc.Matches[i]
		switch m.Stage {
		case models.StageSemi:
			semis = append(semis, m)
		case models.StageFinal:
			if k.Final == nil {
				k.Final = m
			}
		case models.StageThirdPlace:
			if k.Third == nil {
				k.Third = m
			}
		}
	}
	sort.SliceStable(semis, func(i, j int) bool {
		return semis[i].Kickoff() < semis[j].Kickoff()
	})
	if len(semis) > 0 {
		k.Semi1 = semis[0]
	}
	if len(semis) > 1 {
		k.Semi2 = semis[1]
	}
	return k
}

// winnerLoser returns the decisive result of a finished knockout match.
// Knockout matches are assumed to produce a winner; a tied score means
// the data is invalid and both ids come back empty so the dependent
// slots stay untouched.
func winnerLoser(m *models.Match) (winner, loser string) {
	if m == nil || m.Status != models.StatusFinished {
		return "", ""
	}
	switch {
	case m.HomeScore > m.AwayScore:
		return m.HomeTeamID(), m.AwayTeamID()
	case m.AwayScore > m.HomeScore:
		return m.AwayTeamID(), m.HomeTeamID()
	}
	return "", ""
}

// assign writes teamID into the slot unless the id is empty or already
// in place. It never writes a null id.
func assign(slot **string, teamID string) bool {
	if teamID == "" {
		return false
	}
	if *slot != nil && **slot == teamID {
		return false
	}
	id := teamID
	*slot = &id
	return true
}

// rankedTeamID returns the team id at rank (0 = winner, 1 = runner-up).
func rankedTeamID(rows []models.StandingRow, rank int) string {
	if rank >= len(rows) {
		return ""
	}
	return rows[rank].Team.ID
}

// ResolveBracket populates knockout slots from group standings and
// finished semifinal results. It is idempotent, re-run after every
// mutation that can affect qualification, and never touches a knockout
// match that has already left the scheduled state, so in-progress
// matches cannot have their participants silently swapped. Returns
// whether any slot changed.
//
// Pairing: SF1 = group-A winner vs group-B runner-up; SF2 = group-B
// winner vs group-A runner-up. Final takes the semifinal winners,
// third place the losers, both only once both semifinals are finished.
func ResolveBracket(doc *models.Tournament) bool {
	k := FindKnockout(doc)
	changed := false

	standingsA := ComputeStandings(doc.Teams, doc.Matches, "A")
	standingsB := ComputeStandings(doc.Teams, doc.Matches, "B")
	groupADone := GroupFinished(doc.Matches, "A")
	groupBDone := GroupFinished(doc.Matches, "B")

	if k.Semi1 != nil && k.Semi1.Status == models.StatusScheduled {
		if groupADone && assign(&k.Semi1.HomeTeam, rankedTeamID(standingsA, 0)) {
			changed = true
		}
		if groupBDone && assign(&k.Semi1.AwayTeam, rankedTeamID(standingsB, 1)) {
			changed = true
		}
	}
	if k.Semi2 != nil && k.Semi2.Status == models.StatusScheduled {
		if groupBDone && assign(&k.Semi2.HomeTeam, rankedTeamID(standingsB, 0)) {
			changed = true
		}
		if groupADone && assign(&k.Semi2.AwayTeam, rankedTeamID(standingsA, 1)) {
			changed = true
		}
	}

	sf1Winner, sf1Loser := winnerLoser(k.Semi1)
	sf2Winner, sf2Loser := winnerLoser(k.Semi2)
	bothSemisDone := k.Semi1 != nil && k.Semi2 != nil &&
		k.Semi1.Status == models.StatusFinished && k.Semi2.Status == models.StatusFinished

	if bothSemisDone {
		if k.Final != nil && k.Final.Status == models.StatusScheduled {
			if assign(&k.Final.HomeTeam, sf1Winner) {
				changed = true
			}
			if assign(&k.Final.AwayTeam, sf2Winner) {
				changed = true
			}
		}
		if k.Third != nil && k.Third.Status == models.StatusScheduled {
			if assign(&k.Third.HomeTeam, sf1Loser) {
				changed = true
			}
			if assign(&k.Third.AwayTeam, sf2Loser) {
				changed = true
			}
		}
	}

	return changed
}
