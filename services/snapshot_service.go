package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hastma/hastma-cup/storage"
)

// SnapshotService exports the current document as a dated JSON object
// in the configured R2 bucket. Uploads are operator-triggered backups,
// separate from the regular persistence path.
type SnapshotService interface {
	Export(ctx context.Context) (*storage.UploadResult, error)
}

type snapshotService struct {
	tournaments TournamentService
	uploader    storage.FileUploader
}

func NewSnapshotService(tournaments TournamentService, uploader storage.FileUploader) SnapshotService {
	return &snapshotService{
		tournaments: tournaments,
		uploader:    uploader,
	}
}

func (s *snapshotService) Export(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrSnapshotsDisabled
	}

	doc := s.tournaments.Document(ctx)
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document snapshot: %w", err)
	}

	key := fmt.Sprintf("snapshots/tournament-%s.json", time.Now().UTC().Format("2006-01-02T15-04-05"))
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to upload document snapshot: %w", err)
	}
	return result, nil
}
