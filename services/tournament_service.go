package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hastma/hastma-cup/engine"
	"github.com/hastma/hastma-cup/models"
	"github.com/hastma/hastma-cup/repositories"
	"github.com/hastma/hastma-cup/storage"
)

const saveTimeout = 10 * time.Second

// TournamentService owns the tournament aggregate. All mutation goes
// through its typed commands; no other component touches the document.
// Reads return deep clones so callers never observe in-place mutation.
type TournamentService interface {
	Load(ctx context.Context) error
	Document(ctx context.Context) *models.Tournament
	ReplaceDocument(ctx context.Context, doc *models.Tournament) (time.Time, error)

	CreateTeam(ctx context.Context, team models.Team) error
	UpdateTeam(ctx context.Context, id string, input UpdateTeamInput) error
	DeleteTeam(ctx context.Context, id string) error

	AddPlayer(ctx context.Context, teamID string, player models.Player) error
	UpdatePlayer(ctx context.Context, teamID string, index int, player models.Player) error
	RemovePlayer(ctx context.Context, teamID string, index int) error
	SetCaptain(ctx context.Context, teamID string, index int) error

	CreateMatch(ctx context.Context, match models.Match) error
	UpdateSchedule(ctx context.Context, matchID string, input ScheduleInput) error

	SetMatchStatus(ctx context.Context, matchID string, status models.MatchStatus) error
	FinishMatch(ctx context.Context, matchID string) error
	UnfinishMatch(ctx context.Context, matchID string) error

	AddEvent(ctx context.Context, matchID string, event models.Event) (*models.Match, error)
	UpdateEvent(ctx context.Context, matchID string, index int, event models.Event) (*models.Match, error)
	RemoveEvent(ctx context.Context, matchID string, index int) (*models.Match, error)
	AdjustScore(ctx context.Context, matchID string, side string, delta int) (*models.Match, error)
	RecomputeScore(ctx context.Context, matchID string) (*models.Match, error)

	Standings(ctx context.Context, group string) []models.StandingRow
	Logs(ctx context.Context) []models.LogEntry

	// WaitForSaves blocks until in-flight remote saves have settled.
	// Used on shutdown and by tests.
	WaitForSaves()
}

// UpdateTeamInput carries partial team edits; nil fields stay as is.
type UpdateTeamInput struct {
	Name    *string `json:"name,omitempty"`
	Group   *string `json:"group,omitempty"`
	Color   *string `json:"color,omitempty"`
	Manager *string `json:"manager,omitempty"`
}

// ScheduleInput carries partial fixture edits; nil fields stay as is.
type ScheduleInput struct {
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	EndTime *string `json:"endTime,omitempty"`
	Venue   *string `json:"venue,omitempty"`
}

type tournamentService struct {
	mu     sync.RWMutex
	doc    *models.Tournament
	repo   repositories.DocumentRepository
	cache  *storage.DocumentCache
	logger *slog.Logger
	saves  sync.WaitGroup
}

func NewTournamentService(
	repo repositories.DocumentRepository,
	cache *storage.DocumentCache,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Load bootstraps the in-memory document: remote store first, then the
// local cache, then the hardcoded default. Never fails hard; an
// unreachable remote degrades to cache-only operation.
func (s *tournamentService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, err := s.repo.Get(ctx); err == nil && doc != nil && len(doc.Teams) > 0 {
		s.doc = doc
		s.logger.Info("tournament document loaded from remote store")
		return nil
	} else if err != nil {
		s.logger.Warn("remote document load failed, trying local cache", slog.Any("error", err))
	}

	if doc, err := s.cache.Load(); err == nil && len(doc.Teams) > 0 {
		s.doc = doc
		s.logger.Info("tournament document loaded from local cache")
		return nil
	}

	s.doc = models.DefaultTournament(time.Now().UTC())
	s.logger.Info("tournament document seeded from default fixture")
	return nil
}

func (s *tournamentService) Document(ctx context.Context) *models.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

func (s *tournamentService) ReplaceDocument(ctx context.Context, doc *models.Tournament) (time.Time, error) {
	if doc == nil {
		return time.Time{}, ErrDocumentRequired
	}
	if doc.Teams == nil || doc.Matches == nil {
		return time.Time{}, fmt.Errorf("%w: teams and matches are required", ErrDocumentMalformed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc.Clone()
	if engine.ResolveBracket(s.doc) {
		s.doc.AppendLog("Bracket slots updated after document replace", time.Now().UTC())
	}
	stamp := s.finishMutationLocked("Replaced tournament document")
	return stamp, nil
}

// mutate runs a command under the write lock. The command either fully
// applies or fully no-ops; only successful commands are logged and
// persisted.
func (s *tournamentService) mutate(action string, resolve bool, fn func(doc *models.Tournament) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}
	if resolve && engine.ResolveBracket(s.doc) {
		s.doc.AppendLog("Bracket slots updated", time.Now().UTC())
	}
	s.finishMutationLocked(action)
	return nil
}

// finishMutationLocked stamps, audits and persists the document. The
// local cache is written synchronously; the remote save is
// fire-and-forget with its failure logged, never surfaced. Callers hold
// the write lock.
func (s *tournamentService) finishMutationLocked(action string) time.Time {
	now := time.Now().UTC()
	s.doc.AppendLog(action, now)
	s.doc.Metadata.LastUpdated = now

	snapshot := s.doc.Clone()
	if err := s.cache.Store(snapshot); err != nil {
		s.logger.Error("failed to write local cache", slog.Any("error", err))
	}

	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.repo.Save(ctx, snapshot); err != nil {
			s.logger.Warn("remote save failed, local cache remains authoritative", slog.Any("error", err))
		}
	}()

	return now
}

func (s *tournamentService) WaitForSaves() {
	s.saves.Wait()
}

// --- Teams ---

func (s *tournamentService) CreateTeam(ctx context.Context, team models.Team) error {
	return s.mutate(fmt.Sprintf("Added team %s (%s)", team.Name, team.ID), false, func(doc *models.Tournament) error {
		return engine.CreateTeam(doc, team)
	})
}

func (s *tournamentService) UpdateTeam(ctx context.Context, id string, input UpdateTeamInput) error {
	return s.mutate(fmt.Sprintf("Updated team %s", id), false, func(doc *models.Tournament) error {
		team, ok := doc.TeamByID(id)
		if !ok {
			return engine.ErrTeamNotFound
		}
		if input.Color != nil && !engine.ValidHexColor(*input.Color) {
			return fmt.Errorf("%w: color must be a #RRGGBB hex string", engine.ErrValidation)
		}
		if input.Name != nil && *input.Name != "" {
			team.Name = *input.Name
		}
		if input.Group != nil {
			team.Group = *input.Group
		}
		if input.Color != nil {
			team.Color = *input.Color
		}
		if input.Manager != nil {
			manager := *input.Manager
			team.Manager = &manager
		}
		return nil
	})
}

// DeleteTeam does not cascade: matches keep dangling references which
// resolve to TBD on display.
func (s *tournamentService) DeleteTeam(ctx context.Context, id string) error {
	return s.mutate(fmt.Sprintf("Deleted team %s", id), false, func(doc *models.Tournament) error {
		return engine.DeleteTeam(doc, id)
	})
}

// --- Players ---

func (s *tournamentService) AddPlayer(ctx context.Context, teamID string, player models.Player) error {
	return s.mutate(fmt.Sprintf("Added player %s to team %s", player.Name, teamID), false, func(doc *models.Tournament) error {
		team, ok := doc.TeamByID(teamID)
		if !ok {
			return engine.ErrTeamNotFound
		}
		if player.Name == "" {
			return fmt.Errorf("%w: player name is required", engine.ErrValidation)
		}
		player.IsCaptain = false
		team.Players = append(team.Players, player)
		return nil
	})
}

func (s *tournamentService) UpdatePlayer(ctx context.Context, teamID string, index int, player models.Player) error {
	return s.mutate(fmt.Sprintf("Updated player #%d of team %s", index, teamID), false, func(doc *models.Tournament) error {
		team, ok := doc.TeamByID(teamID)
		if !ok {
			return engine.ErrTeamNotFound
		}
		if index < 0 || index >= len(team.Players) {
			return fmt.Errorf("%w: player index %d", engine.ErrValidation, index)
		}
		player.IsCaptain = team.Players[index].IsCaptain
		team.Players[index] = player
		return nil
	})
}

func (s *tournamentService) RemovePlayer(ctx context.Context, teamID string, index int) error {
	return s.mutate(fmt.Sprintf("Removed player #%d from team %s", index, teamID), false, func(doc *models.Tournament) error {
		team, ok := doc.TeamByID(teamID)
		if !ok {
			return engine.ErrTeamNotFound
		}
		if index < 0 || index >= len(team.Players) {
			return fmt.Errorf("%w: player index %d", engine.ErrValidation, index)
		}
		team.Players = append(team.Players[:index], team.Players[index+1:]...)
		return nil
	})
}

func (s *tournamentService) SetCaptain(ctx context.Context, teamID string, index int) error {
	return s.mutate(fmt.Sprintf("Toggled captain of team %s", teamID), false, func(doc *models.Tournament) error {
		team, ok := doc.TeamByID(teamID)
		if !ok {
			return engine.ErrTeamNotFound
		}
		return engine.SetCaptain(team, index)
	})
}

// --- Matches ---

func (s *tournamentService) CreateMatch(ctx context.Context, match models.Match) error {
	if match.EndTime == "" {
		match.EndTime = defaultEndTime(match.Time, match.Stage)
	}
	return s.mutate(fmt.Sprintf("Created match %s", match.ID), false, func(doc *models.Tournament) error {
		return engine.CreateMatch(doc, match)
	})
}

func (s *tournamentService) UpdateSchedule(ctx context.Context, matchID string, input ScheduleInput) error {
	return s.mutate(fmt.Sprintf("Updated schedule of match %s", matchID), false, func(doc *models.Tournament) error {
		match, ok := doc.MatchByID(matchID)
		if !ok {
			return engine.ErrMatchNotFound
		}
		if input.Date != nil && *input.Date != "" {
			match.Date = *input.Date
		}
		if input.Time != nil && *input.Time != "" {
			match.Time = *input.Time
			if input.EndTime == nil {
				match.EndTime = defaultEndTime(match.Time, match.Stage)
			}
		}
		if input.EndTime != nil && *input.EndTime != "" {
			match.EndTime = *input.EndTime
		}
		if input.Venue != nil && *input.Venue != "" {
			match.Venue = *input.Venue
		}
		return nil
	})
}

func (s *tournamentService) SetMatchStatus(ctx context.Context, matchID string, status models.MatchStatus) error {
	return s.mutate(fmt.Sprintf("Updated status of match %s to %s", matchID, status), true, func(doc *models.Tournament) error {
		return engine.SetStatus(doc, matchID, status)
	})
}

func (s *tournamentService) FinishMatch(ctx context.Context, matchID string) error {
	return s.mutate(fmt.Sprintf("Finished match %s", matchID), true, func(doc *models.Tournament) error {
		return engine.Finish(doc, matchID)
	})
}

// UnfinishMatch is the destructive rollback: score reset, ledger
// cleared, status back to scheduled. The resolver re-runs immediately
// so downstream bracket slots do not linger on a retracted result.
func (s *tournamentService) UnfinishMatch(ctx context.Context, matchID string) error {
	return s.mutate(fmt.Sprintf("Unfinished match %s (result cleared)", matchID), true, func(doc *models.Tournament) error {
		return engine.Unfinish(doc, matchID)
	})
}

// --- Event ledger ---

func (s *tournamentService) AddEvent(ctx context.Context, matchID string, event models.Event) (*models.Match, error) {
	return s.mutateMatch(matchID, fmt.Sprintf("Registered %s event on match %s", event.Type, matchID), true, func(match *models.Match) error {
		if err := engine.AddEvent(match, event); err != nil {
			return err
		}
		if engine.ForeignTeam(match, event) {
			s.logger.Warn("event references a team that plays in neither slot",
				slog.String("match", matchID), slog.String("team", event.TeamID))
		}
		return nil
	})
}

func (s *tournamentService) UpdateEvent(ctx context.Context, matchID string, index int, event models.Event) (*models.Match, error) {
	return s.mutateMatch(matchID, fmt.Sprintf("Corrected event #%d on match %s", index, matchID), true, func(match *models.Match) error {
		return engine.UpdateEvent(match, index, event)
	})
}

func (s *tournamentService) RemoveEvent(ctx context.Context, matchID string, index int) (*models.Match, error) {
	return s.mutateMatch(matchID, fmt.Sprintf("Deleted event #%d from match %s", index, matchID), true, func(match *models.Match) error {
		return engine.RemoveEvent(match, index)
	})
}

// AdjustScore is the manual override channel; it deliberately does not
// touch the ledger and diverges from it until RecomputeScore is called.
func (s *tournamentService) AdjustScore(ctx context.Context, matchID string, side string, delta int) (*models.Match, error) {
	return s.mutateMatch(matchID, fmt.Sprintf("Adjusted %s score of match %s by %+d (manual override)", side, matchID, delta), true, func(match *models.Match) error {
		return engine.AdjustScore(match, side, delta)
	})
}

func (s *tournamentService) RecomputeScore(ctx context.Context, matchID string) (*models.Match, error) {
	return s.mutateMatch(matchID, fmt.Sprintf("Recomputed score of match %s from events", matchID), true, func(match *models.Match) error {
		engine.RecomputeScore(match)
		return nil
	})
}

// mutateMatch is mutate specialized for commands addressing one match;
// it returns a clone of the mutated match for the response body.
func (s *tournamentService) mutateMatch(matchID, action string, resolve bool, fn func(match *models.Match) error) (*models.Match, error) {
	var result models.Match
	err := s.mutate(action, resolve, func(doc *models.Tournament) error {
		match, ok := doc.MatchByID(matchID)
		if !ok {
			return engine.ErrMatchNotFound
		}
		if err := fn(match); err != nil {
			return err
		}
		result = *match
		result.Events = append([]models.Event(nil), match.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// --- Reads ---

func (s *tournamentService) Standings(ctx context.Context, group string) []models.StandingRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.ComputeStandings(s.doc.Teams, s.doc.Matches, group)
}

func (s *tournamentService) Logs(ctx context.Context) []models.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LogEntry(nil), s.doc.Logs...)
}

// defaultEndTime mirrors the fixed match lengths: 16 minutes for group
// and semifinal fixtures, 18 for the finals.
func defaultEndTime(kickoff string, stage models.Stage) string {
	t, err := time.Parse("15:04", kickoff)
	if err != nil {
		return kickoff
	}
	minutes := 16
	if stage == models.StageFinal || stage == models.StageThirdPlace {
		minutes = 18
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04")
}
