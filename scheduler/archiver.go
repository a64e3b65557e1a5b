package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/google/uuid"
)

type OverviewSource interface {
	Overview(ctx context.Context) (*models.Overview, error)
}

// SnapshotArchiver writes the current standings and pairings to object storage.
type SnapshotArchiver struct {
	source   OverviewSource
	uploader storage.FileUploader
	logger   *slog.Logger
	now      func() time.Time
}

func NewSnapshotArchiver(source OverviewSource, uploader storage.FileUploader, logger *slog.Logger) *SnapshotArchiver {
	return &SnapshotArchiver{
		source:   source,
		uploader: uploader,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SnapshotKey names an object as snapshots/YYYY/MM/DD/HHMMSS-<uuid>.json.
func SnapshotKey(t time.Time, id uuid.UUID) string {
	return fmt.Sprintf("snapshots/%s/%s-%s.json", t.Format("2006/01/02"), t.Format("150405"), id)
}

func (a *SnapshotArchiver) Archive(ctx context.Context) (*storage.UploadResult, error) {
	overview, err := a.source.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}

	body, err := json.MarshalIndent(overview, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := SnapshotKey(a.now(), uuid.New())
	result, err := a.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	a.logger.Info("snapshot archived",
		slog.String("key", result.Key),
		slog.Int("players", overview.PlayerCount),
		slog.Int("pairings", len(overview.Pairings)),
	)
	return result, nil
}
