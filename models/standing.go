package models

// StandingRow is derived from finished group matches on every request
// and never persisted.
type StandingRow struct {
	Team           Team `json:"team"`
	Played         int  `json:"played"`
	Won            int  `json:"won"`
	Drawn          int  `json:"drawn"`
	Lost           int  `json:"lost"`
	GoalsFor       int  `json:"goalsFor"`
	GoalsAgainst   int  `json:"goalsAgainst"`
	Points         int  `json:"points"`
	FairPlayPoints int  `json:"fairPlayPoints"`
}

// GoalDifference is the second tiebreak key.
func (r StandingRow) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}
