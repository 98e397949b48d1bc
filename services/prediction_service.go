package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hastma/hastma-cup/models"
	"github.com/hastma/hastma-cup/repositories"
)

// PredictionService fronts the pick'em log. It lives next to the
// tournament engine but shares no state with it.
type PredictionService interface {
	Submit(ctx context.Context, p models.Prediction) (total int, err error)
	List(ctx context.Context) ([]models.Prediction, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

type predictionService struct {
	repo repositories.PredictionRepository
}

func NewPredictionService(repo repositories.PredictionRepository) PredictionService {
	return &predictionService{repo: repo}
}

func (s *predictionService) Submit(ctx context.Context, p models.Prediction) (int, error) {
	if p.Winner == "" {
		return 0, ErrPredictionInvalid
	}
	p.ServerTimestamp = time.Now().UTC()
	if err := s.repo.Append(ctx, &p); err != nil {
		return 0, fmt.Errorf("failed to store prediction: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		// The prediction is stored; a failed count should not fail the
		// submission.
		return 0, nil
	}
	return total, nil
}

func (s *predictionService) List(ctx context.Context) ([]models.Prediction, error) {
	return s.repo.List(ctx)
}

func (s *predictionService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *predictionService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
