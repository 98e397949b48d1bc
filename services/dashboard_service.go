package services

import (
	"context"

	"github.com/hastma/hastma-cup/models"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	tournaments TournamentService
	predictions PredictionService
}

func NewDashboardService(tournaments TournamentService, predictions PredictionService) DashboardService {
	return &dashboardService{
		tournaments: tournaments,
		predictions: predictions,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		doc := s.tournaments.Document(gCtx)
		stats.TournamentName = doc.Metadata.TournamentName
		stats.LastUpdated = doc.Metadata.LastUpdated
		for i := range doc.Matches {
			if doc.Matches[i].Status.InPlay() {
				id := doc.Matches[i].ID
				stats.LiveMatchID = &id
				break
			}
		}
		return nil
	})
	g.Go(func() error {
		stats.StandingsA = s.tournaments.Standings(gCtx, "A")
		stats.StandingsB = s.tournaments.Standings(gCtx, "B")
		return nil
	})
	g.Go(func() error {
		// A failed count degrades to zero rather than failing the page.
		total, err := s.predictions.Count(gCtx)
		if err == nil {
			stats.TotalPredictions = total
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
