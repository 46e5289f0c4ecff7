package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okarpov/datafreezer/internal/common"
	"github.com/okarpov/datafreezer/internal/dbx"
	"github.com/okarpov/datafreezer/internal/server/models"
	"github.com/okarpov/datafreezer/internal/server/storage"
)

type transferState int

const (
	transferIdle transferState = iota
	transferReceiving
	transferCompleted
	transferAborted
)

// Transfer owns the server-side state of one inbound upload stream. It is
// driven by exactly one stream handler and is not safe for concurrent use.
//
// Lifecycle: Ingest is called per frame until it reports the upload complete,
// then Complete commits the file. Abort discards a partial upload on any
// failure, removing whatever was written to disk.
type Transfer struct {
	svc         *FileService
	state       transferState
	userName    string
	fileName    string
	filePath    string
	handle      storage.Handle
	totalChunks int64
	received    map[int64]struct{}
}

// NewTransfer starts an idle upload transfer.
func (s *FileService) NewTransfer() *Transfer {
	return &Transfer{
		svc:      s,
		state:    transferIdle,
		received: make(map[int64]struct{}),
	}
}

// FileName returns the collision-free name assigned to the upload, which may
// differ from the name the client asked for.
func (t *Transfer) FileName() string {
	return t.fileName
}

// Ingest applies one frame. The first frame fixes the owner, file name and
// chunk count; the file name and count on later frames are ignored. Chunks
// may arrive in any order and a resent chunk overwrites itself in place.
// Ingest returns true once every chunk 0..TotalChunks-1 has arrived at least
// once.
func (t *Transfer) Ingest(frame *Chunk) (bool, error) {
	switch t.state {
	case transferIdle:
		if err := t.begin(frame); err != nil {
			return false, err
		}
	case transferReceiving:
	default:
		return false, common.ErrProtocol
	}

	if frame.ChunkNumber < 0 || frame.ChunkNumber >= t.totalChunks {
		return false, common.ErrProtocol
	}
	if int64(len(frame.Data)) > t.svc.chunkSize {
		return false, common.ErrProtocol
	}

	if _, err := t.handle.WriteAt(frame.Data, frame.ChunkNumber*t.svc.chunkSize); err != nil {
		return false, fmt.Errorf("error writing chunk: %w", err)
	}
	t.received[frame.ChunkNumber] = struct{}{}

	return int64(len(t.received)) == t.totalChunks, nil
}

// Complete finalizes a fully received upload: the handle is closed and the
// metadata record plus its audit entry are committed in one transaction.
// On any failure the partial file is removed and the upload is reported
// failed as a whole.
func (t *Transfer) Complete(ctx context.Context) (*models.FileRecord, error) {
	if t.state != transferReceiving || int64(len(t.received)) != t.totalChunks {
		return nil, common.ErrProtocol
	}

	size, err := t.handle.Size()
	if err == nil {
		err = t.handle.Close()
	}
	if err != nil {
		t.Abort(ctx)
		return nil, fmt.Errorf("error finalizing file: %w", err)
	}
	t.handle = nil

	user, err := t.svc.getUser(ctx, t.userName)
	if err != nil {
		t.Abort(ctx)
		return nil, err
	}

	record := &models.FileRecord{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		FileName:   t.fileName,
		FilePath:   t.filePath,
		FileSize:   size,
		UploadedAt: time.Now(),
	}

	err = dbx.WithTx(ctx, t.svc.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := t.svc.repomanager.Files(tx).Create(ctx, record); err != nil {
			return err
		}
		return t.svc.newAudit(ctx, tx, user.ID, models.ActionUpload, record)
	})
	if err != nil {
		t.Abort(ctx)
		return nil, common.ErrorInternal
	}
	t.state = transferCompleted

	t.svc.mirrorUpload(ctx, user.ID, record)

	return record, nil
}

// Abort discards a partial upload: the handle is closed and the partially
// written file is removed from disk. Calling Abort on an idle or already
// finished transfer is a no-op, so stream handlers can defer it
// unconditionally.
func (t *Transfer) Abort(ctx context.Context) {
	if t.state != transferIdle && t.state != transferReceiving {
		return
	}
	wasReceiving := t.state == transferReceiving
	t.state = transferAborted

	if t.handle != nil {
		_ = t.handle.Close()
		t.handle = nil
	}
	if wasReceiving && t.filePath != "" {
		if err := t.svc.store.Remove(t.filePath); err != nil {
			t.svc.logger.Warn(ctx, "failed to remove partial upload", "path", t.filePath, "error", err)
		}
	}
}

func (t *Transfer) begin(frame *Chunk) error {
	if frame.UserName == "" || frame.FileName == "" || frame.TotalChunks < 1 {
		return common.ErrProtocol
	}

	name, handle, err := t.svc.store.CreateNew(frame.FileName)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	t.userName = frame.UserName
	t.fileName = name
	t.filePath = t.svc.store.Path(name)
	t.handle = handle
	t.totalChunks = frame.TotalChunks
	t.state = transferReceiving
	return nil
}

// mirrorUpload copies a committed file to the mirror. Failures are logged and
// swallowed; the upload already succeeded.
func (s *FileService) mirrorUpload(ctx context.Context, userID string, record *models.FileRecord) {
	if !s.mirror.Enabled() {
		return
	}
	body, err := s.store.Open(record.FilePath)
	if err != nil {
		s.logger.Warn(ctx, "mirror upload failed", "file", record.FileName, "error", err)
		return
	}
	defer body.Close()

	if err := s.mirror.Put(ctx, mirrorKey(userID, record.ID), body); err != nil {
		s.logger.Warn(ctx, "mirror upload failed", "file", record.FileName, "error", err)
	}
}
