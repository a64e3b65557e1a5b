package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Dosada05/swiss-tournament/storage"
)

type SnapshotArchiver interface {
	Archive(ctx context.Context) (*storage.UploadResult, error)
}

type SnapshotHandler struct {
	responder
	archiver SnapshotArchiver
}

// NewSnapshotHandler accepts a nil archiver when object storage is not configured.
func NewSnapshotHandler(archiver SnapshotArchiver, logger *slog.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		responder: responder{logger: logger},
		archiver:  archiver,
	}
}

// CreateSnapshotHandler godoc
// @Summary      Archive standings and pairings to object storage now
// @Tags         snapshots
// @Produce      json
// @Success      201  {object}  map[string]storage.UploadResult
// @Failure      503  {object}  map[string]string
// @Router       /snapshots [post]
func (h *SnapshotHandler) CreateSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	if h.archiver == nil {
		h.unavailableResponse(w, r, "snapshot archive is not configured")
		return
	}

	result, err := h.archiver.Archive(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": result}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
