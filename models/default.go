package models

import "time"

func strPtr(s string) *string { return &s }

// DefaultTournament builds the seed document used when neither the
// remote store nor the local cache holds one: two groups of three, six
// interleaved group fixtures, then semifinals, third place and final
// with both slots undetermined.
func DefaultTournament(now time.Time) *Tournament {
	defaultRoster := func() []Player {
		return []Player{
			{Number: 1, Name: "Keeper"},
			{Number: 4, Name: "Defender"},
			{Number: 7, Name: "Midfielder"},
			{Number: 10, Name: "Striker"},
		}
	}

	return &Tournament{
		Teams: []Team{
			{ID: "2014", Name: "Team 2014", Group: "A", Color: "#e74c3c", Players: defaultRoster()},
			{ID: "2017", Name: "Team 2017", Group: "A", Color: "#3498db", Players: defaultRoster()},
			{ID: "u2011", Name: "U-2011", Group: "A", Color: "#2ecc71", Players: defaultRoster()},
			{ID: "2018", Name: "Team 2018", Group: "B", Color: "#9b59b6", Players: defaultRoster()},
			{ID: "2019", Name: "Team 2019", Group: "B", Color: "#f39c12", Players: defaultRoster()},
			{ID: "2016", Name: "Team 2016", Group: "B", Color: "#1abc9c", Players: defaultRoster()},
		},
		Matches: []Match{
			// Group fixtures interleaved between groups for rest time.
			{ID: "A1", Stage: StageGroup, Group: strPtr("A"), HomeTeam: strPtr("2014"), AwayTeam: strPtr("u2011"),
				Date: "2026-01-31", Time: "16:00", EndTime: "16:16", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "B1", Stage: StageGroup, Group: strPtr("B"), HomeTeam: strPtr("2018"), AwayTeam: strPtr("2016"),
				Date: "2026-01-31", Time: "16:18", EndTime: "16:34", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "A2", Stage: StageGroup, Group: strPtr("A"), HomeTeam: strPtr("2017"), AwayTeam: strPtr("2014"),
				Date: "2026-01-31", Time: "16:36", EndTime: "16:52", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "B2", Stage: StageGroup, Group: strPtr("B"), HomeTeam: strPtr("2019"), AwayTeam: strPtr("2018"),
				Date: "2026-01-31", Time: "16:54", EndTime: "17:10", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "A3", Stage: StageGroup, Group: strPtr("A"), HomeTeam: strPtr("u2011"), AwayTeam: strPtr("2017"),
				Date: "2026-01-31", Time: "17:12", EndTime: "17:28", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "B3", Stage: StageGroup, Group: strPtr("B"), HomeTeam: strPtr("2016"), AwayTeam: strPtr("2019"),
				Date: "2026-01-31", Time: "17:30", EndTime: "17:46", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},

			// Knockout slots resolved from standings / semifinal results.
			{ID: "SF1", Stage: StageSemi,
				Date: "2026-01-31", Time: "18:45", EndTime: "19:01", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "SF2", Stage: StageSemi,
				Date: "2026-01-31", Time: "19:05", EndTime: "19:21", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "M3RD", Stage: StageThirdPlace,
				Date: "2026-01-31", Time: "19:25", EndTime: "19:43", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
			{ID: "F1", Stage: StageFinal,
				Date: "2026-01-31", Time: "19:47", EndTime: "20:05", Venue: "Mini Soccer", Status: StatusScheduled, Events: []Event{}},
		},
		Metadata: Metadata{
			TournamentName: "HASTMA CUP #3 2026",
			Subtitle:       "Mini Soccer Tournament",
			StartDate:      "2026-01-31",
			LastUpdated:    now,
		},
		Logs: []LogEntry{},
	}
}
