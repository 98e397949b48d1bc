package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hastma/hastma-cup/models"
)

var ErrDocumentNotFound = errors.New("tournament document not found")

// DocumentRepository stores the tournament document wholesale. Save is
// an unconditional overwrite: the last writer wins, with no merge and
// no concurrency token.
type DocumentRepository interface {
	Get(ctx context.Context) (*models.Tournament, error)
	Save(ctx context.Context, doc *models.Tournament) error
}

type postgresDocumentRepository struct {
	db *sql.DB
}

func NewPostgresDocumentRepository(db *sql.DB) DocumentRepository {
	return &postgresDocumentRepository{db: db}
}

func (r *postgresDocumentRepository) Get(ctx context.Context) (*models.Tournament, error) {
	query := `SELECT data FROM tournament_document WHERE id = 1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament document: %w", err)
	}

	doc := &models.Tournament{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to decode tournament document: %w", err)
	}
	return doc, nil
}

func (r *postgresDocumentRepository) Save(ctx context.Context, doc *models.Tournament) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode tournament document: %w", err)
	}

	query := `
		INSERT INTO tournament_document (id, data, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save tournament document: %w", err)
	}
	return nil
}
