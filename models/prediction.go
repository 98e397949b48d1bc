package models

import "time"

// Prediction is one pick'em entry. Predictions are an independent
// append-only log, not part of the tournament document.
type Prediction struct {
	ID              int       `json:"id,omitempty"`
	Name            string    `json:"name,omitempty"`
	Winner          string    `json:"winner"`
	RunnerUp        string    `json:"runnerUp,omitempty"`
	ThirdPlace      string    `json:"thirdPlace,omitempty"`
	ServerTimestamp time.Time `json:"serverTimestamp"`
}

type DashboardStats struct {
	TournamentName   string        `json:"tournamentName"`
	LastUpdated      time.Time     `json:"lastUpdated"`
	LiveMatchID      *string       `json:"liveMatchId,omitempty"`
	StandingsA       []StandingRow `json:"standingsA"`
	StandingsB       []StandingRow `json:"standingsB"`
	TotalPredictions int           `json:"totalPredictions"`
}
