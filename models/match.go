package models

type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusHalftime  MatchStatus = "halftime"
	StatusFinished  MatchStatus = "finished"
)

// InPlay reports whether the status counts as an in-play substate.
func (s MatchStatus) InPlay() bool {
	return s == StatusLive || s == StatusHalftime
}

type Stage string

const (
	StageGroup      Stage = "group"
	StageSemi       Stage = "semi"
	StageFinal      Stage = "final"
	StageThirdPlace Stage = "3rd_place"
)

type EventType string

const (
	EventGoal   EventType = "goal"
	EventYellow EventType = "yellow"
	EventRed    EventType = "red"
)

// Event is one entry of a match's scoring/disciplinary ledger. Minute is
// a sort key for display only; ledger order is insertion order.
type Event struct {
	Type         EventType `json:"type"`
	TeamID       string    `json:"teamId"`
	PlayerNumber int       `json:"playerNumber"`
	PlayerName   string    `json:"playerName"`
	Minute       int       `json:"minute"`
}

// Match holds a fixture. HomeTeam/AwayTeam are nullable team-id
// references; nil means the slot is not yet determined. HomeScore and
// AwayScore are denormalized from the goal events in Events.
type Match struct {
	ID        string      `json:"id"`
	Stage     Stage       `json:"stage"`
	Group     *string     `json:"group"`
	HomeTeam  *string     `json:"homeTeam"`
	AwayTeam  *string     `json:"awayTeam"`
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	EndTime   string      `json:"endTime"`
	Venue     string      `json:"venue"`
	Status    MatchStatus `json:"status"`
	HomeScore int         `json:"homeScore"`
	AwayScore int         `json:"awayScore"`
	Events    []Event     `json:"events"`
}

// Kickoff returns a sortable "date time" key.
func (m *Match) Kickoff() string {
	return m.Date + " " + m.Time
}

// HomeTeamID returns the home slot's team id, or "" when unresolved.
func (m *Match) HomeTeamID() string {
	if m.HomeTeam == nil {
		return ""
	}
	return *m.HomeTeam
}

// AwayTeamID returns the away slot's team id, or "" when unresolved.
func (m *Match) AwayTeamID() string {
	if m.AwayTeam == nil {
		return ""
	}
	return *m.AwayTeam
}
