package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	overview *models.Overview
	err      error
}

func (s staticSource) Overview(context.Context) (*models.Overview, error) {
	return s.overview, s.err
}

type memoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: map[string][]byte{}, types: map[string]string{}}
}

func (u *memoryUploader) Upload(_ context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = body
	u.types[key] = contentType
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (u *memoryUploader) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.objects)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleOverview() *models.Overview {
	standings := []models.Standing{
		{ID: 2, Name: "Bob", Wins: 1, Matches: 1},
		{ID: 1, Name: "Ann", Wins: 0, Matches: 1},
	}
	return &models.Overview{
		PlayerCount: 2,
		Standings:   standings,
		Pairings:    []models.Pairing{{Player1ID: 2, Player1Name: "Bob", Player2ID: 1, Player2Name: "Ann"}},
		Matches:     []*models.Match{{ID: 1, WinnerID: 2, LoserID: 1}},
	}
}

func TestSnapshotKey(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	ts := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "snapshots/2024/03/07/090503-6ba7b810-9dad-11d1-80b4-00c04fd430c8.json", SnapshotKey(ts, id))
}

func TestArchiveUploadsOverview(t *testing.T) {
	uploader := newMemoryUploader()
	archiver := NewSnapshotArchiver(staticSource{overview: sampleOverview()}, uploader, discardLogger())
	archiver.now = func() time.Time { return time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC) }

	result, err := archiver.Archive(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^snapshots/2024/01/02/030405-[0-9a-f-]{36}\.json$`, result.Key)
	assert.Equal(t, "https://cdn.example.com/"+result.Key, result.Location)
	assert.Equal(t, "application/json", uploader.types[result.Key])

	var stored struct {
		PlayerCount int `json:"player_count"`
		Standings   []struct {
			ID     int `json:"id"`
			Losses int `json:"losses"`
		} `json:"standings"`
		Pairings []models.Pairing `json:"pairings"`
	}
	require.NoError(t, json.Unmarshal(uploader.objects[result.Key], &stored))
	assert.Equal(t, 2, stored.PlayerCount)
	require.Len(t, stored.Standings, 2)
	assert.Equal(t, 1, stored.Standings[1].Losses)
	assert.Len(t, stored.Pairings, 1)
}

func TestArchiveErrors(t *testing.T) {
	sourceErr := errors.New("store down")
	_, err := NewSnapshotArchiver(staticSource{err: sourceErr}, newMemoryUploader(), discardLogger()).
		Archive(context.Background())
	assert.ErrorIs(t, err, sourceErr)

	uploadErr := errors.New("bucket missing")
	uploader := newMemoryUploader()
	uploader.err = uploadErr
	_, err = NewSnapshotArchiver(staticSource{overview: sampleOverview()}, uploader, discardLogger()).
		Archive(context.Background())
	assert.ErrorIs(t, err, uploadErr)
}

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	archiver := NewSnapshotArchiver(staticSource{overview: sampleOverview()}, newMemoryUploader(), discardLogger())
	s := NewScheduler(archiver, "every now and then", discardLogger())
	assert.Error(t, s.Start())
}

func TestSchedulerRunsJob(t *testing.T) {
	uploader := newMemoryUploader()
	archiver := NewSnapshotArchiver(staticSource{overview: sampleOverview()}, uploader, discardLogger())

	s := NewScheduler(archiver, "* * * * * *", discardLogger())
	s.RunNow()
	assert.Equal(t, 1, uploader.count())

	require.NoError(t, s.Start())

	require.Eventually(t, func() bool { return uploader.count() >= 2 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
