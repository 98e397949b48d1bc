package engine

import (
	"sort"

	"github.com/hastma/hastma-cup/models"
)

// ComputeStandings is a pure function: group -> ranked rows, recomputed
// from finished group matches on every call. Given identical input two
// runs produce identical, fully ordered output; no two distinct teams
// ever compare equal thanks to the final name tiebreak.
func ComputeStandings(teams []models.Team, matches []models.Match, group string) []models.StandingRow {
	rows := make([]models.StandingRow, 0, len(teams))
	index := make(map[string]int)
	for _, team := range teams {
		if team.Group != group {
			continue
		}
		index[team.ID] = len(rows)
		rows = append(rows, models.StandingRow{Team: team})
	}

	for i := range matches {
		m := &matches[i]
		if m.Stage != models.StageGroup || m.Status != models.StatusFinished {
			continue
		}
		if m.Group == nil || *m.Group != group {
			continue
		}
		hi, homeOK := index[m.HomeTeamID()]
		ai, awayOK := index[m.AwayTeamID()]
		if !homeOK || !awayOK {
			// Dangling or missing reference: the match cannot be folded.
			continue
		}
		home, away := &rows[hi], &rows[ai]

		home.Played++
		away.Played++
		home.GoalsFor += m.HomeScore
		home.GoalsAgainst += m.AwayScore
		away.GoalsFor += m.AwayScore
		away.GoalsAgainst += m.HomeScore

		// Cards feed the fair-play tiebreak: yellow 1, red 2, lower is
		// better.
		for _, e := range m.Events {
			ri, ok := index[e.TeamID]
			if !ok {
				continue
			}
			switch e.Type {
			case models.EventYellow:
				rows[ri].FairPlayPoints++
			case models.EventRed:
				rows[ri].FairPlayPoints += 2
			}
		}

		switch {
		case m.HomeScore > m.AwayScore:
			home.Won++
			home.Points += 3
			away.Lost++
		case m.HomeScore < m.AwayScore:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.GoalsAgainst != b.GoalsAgainst {
			return a.GoalsAgainst < b.GoalsAgainst
		}
		if a.FairPlayPoints != b.FairPlayPoints {
			return a.FairPlayPoints < b.FairPlayPoints
		}
		return a.Team.Name < b.Team.Name
	})

	return rows
}

// GroupFinished reports whether a group has at least one match and
// every one of them is finished.
func GroupFinished(matches []models.Match, group string) bool {
	found := false
	for i := range matches {
		m := &matches[i]
		if m.Stage != models.StageGroup || m.Group == nil || *m.Group != group {
			continue
		}
		found = true
		if m.Status != models.StatusFinished {
			return false
		}
	}
	return found
}
