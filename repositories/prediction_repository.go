package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hastma/hastma-cup/models"
)

// PredictionRepository is the independent pick'em log: append, list in
// insertion order, clear, count. It is not part of the tournament
// document.
type PredictionRepository interface {
	Append(ctx context.Context, p *models.Prediction) error
	List(ctx context.Context) ([]models.Prediction, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

type postgresPredictionRepository struct {
	db *sql.DB
}

func NewPostgresPredictionRepository(db *sql.DB) PredictionRepository {
	return &postgresPredictionRepository{db: db}
}

func (r *postgresPredictionRepository) Append(ctx context.Context, p *models.Prediction) error {
	query := `
		INSERT INTO predictions (name, winner, runner_up, third_place, server_timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Winner, p.RunnerUp, p.ThirdPlace, p.ServerTimestamp,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to append prediction: %w", err)
	}
	return nil
}

func (r *postgresPredictionRepository) List(ctx context.Context) ([]models.Prediction, error) {
	query := `
		SELECT id, name, winner, runner_up, third_place, server_timestamp
		FROM predictions
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	predictions := []models.Prediction{}
	for rows.Next() {
		var p models.Prediction
		if err := rows.Scan(&p.ID, &p.Name, &p.Winner, &p.RunnerUp, &p.ThirdPlace, &p.ServerTimestamp); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("prediction row iteration failed: %w", err)
	}
	return predictions, nil
}

func (r *postgresPredictionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM predictions`); err != nil {
		return fmt.Errorf("failed to clear predictions: %w", err)
	}
	return nil
}

func (r *postgresPredictionRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}
	return n, nil
}
