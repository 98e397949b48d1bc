package models

import "time"

// MaxLogEntries caps the audit ring buffer; the oldest entry is dropped
// once the cap is reached.
const MaxLogEntries = 100

type Metadata struct {
	TournamentName string    `json:"tournamentName"`
	Subtitle       string    `json:"subtitle,omitempty"`
	StartDate      string    `json:"startDate,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
}

// Tournament is the aggregate root. The whole document is persisted
// wholesale on every mutation; there are no partial updates.
type Tournament struct {
	Teams    []Team     `json:"teams"`
	Matches  []Match    `json:"matches"`
	Metadata Metadata   `json:"metadata"`
	Logs     []LogEntry `json:"logs"`
}

// TeamByID resolves a team id by linear scan. Resolution is always
// fallible: matches may reference teams that were deleted since.
func (t *Tournament) TeamByID(id string) (*Team, bool) {
	if id == "" {
		return nil, false
	}
	for i := range t.Teams {
		if t.Teams[i].ID == id {
			return &t.Teams[i], true
		}
	}
	return nil, false
}

// MatchByID resolves a match id by linear scan.
func (t *Tournament) MatchByID(id string) (*Match, bool) {
	if id == "" {
		return nil, false
	}
	for i := range t.Matches {
		if t.Matches[i].ID == id {
			return &t.Matches[i], true
		}
	}
	return nil, false
}

// AppendLog records an operator action at the head of the audit log,
// evicting the oldest entry beyond MaxLogEntries.
func (t *Tournament) AppendLog(action string, now time.Time) {
	entry := LogEntry{Timestamp: now, Action: action}
	t.Logs = append([]LogEntry{entry}, t.Logs...)
	if len(t.Logs) > MaxLogEntries {
		t.Logs = t.Logs[:MaxLogEntries]
	}
}

// Clone returns a deep copy of the document. Services hand out clones so
// readers never observe in-place mutation.
func (t *Tournament) Clone() *Tournament {
	if t == nil {
		return nil
	}
	out := &Tournament{
		Teams:    make([]Team, len(t.Teams)),
		Matches:  make([]Match, len(t.Matches)),
		Metadata: t.Metadata,
		Logs:     append([]LogEntry(nil), t.Logs...),
	}
	for i, team := range t.Teams {
		c := team
		c.Players = append([]Player(nil), team.Players...)
		if team.Manager != nil {
			m := *team.Manager
			c.Manager = &m
		}
		out.Teams[i] = c
	}
	for i, match := range t.Matches {
		c := match
		c.Events = append([]Event(nil), match.Events...)
		if match.Group != nil {
			g := *match.Group
			c.Group = &g
		}
		if match.HomeTeam != nil {
			h := *match.HomeTeam
			c.HomeTeam = &h
		}
		if match.AwayTeam != nil {
			a := *match.AwayTeam
			c.AwayTeam = &a
		}
		out.Matches[i] = c
	}
	return out
}
