package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okarpov/datafreezer/internal/common"
	"github.com/okarpov/datafreezer/internal/dbx"
	"github.com/okarpov/datafreezer/internal/logging"
	"github.com/okarpov/datafreezer/internal/server/config"
	"github.com/okarpov/datafreezer/internal/server/models"
	"github.com/okarpov/datafreezer/internal/server/repositories/repomanager"
	"github.com/okarpov/datafreezer/internal/server/storage"
)

// Chunk is one frame of an upload stream. UserName, FileName and TotalChunks
// are read from the first frame only; later frames contribute ChunkNumber and
// Data.
type Chunk struct {
	UserName    string
	FileName    string
	ChunkNumber int64
	TotalChunks int64
	Data        []byte
}

// Mirror is the cold-copy sink for completed uploads. Mirroring is strictly
// best-effort: the disk store stays authoritative.
type Mirror interface {
	Enabled() bool
	Put(ctx context.Context, key string, body io.Reader) error
	Delete(ctx context.Context, key string) error
}

// FileService implements the file operations: chunked upload and download,
// listing, and deletion. Every mutation is paired with an audit entry.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.Store
	mirror      Mirror
	chunkSize   int64
	logger      logging.Logger
}

// NewFileService constructs a FileService using repositories, the disk store,
// the optional mirror, and server config.
func NewFileService(db *sql.DB, m repomanager.RepositoryManager, store storage.Store, mirror Mirror, cfg *config.Config, logger logging.Logger) *FileService {
	return &FileService{
		db:          db,
		repomanager: m,
		store:       store,
		mirror:      mirror,
		chunkSize:   cfg.ChunkSize,
		logger:      logger,
	}
}

// List returns the file names owned by userName, ordered by name.
func (s *FileService) List(ctx context.Context, userName string) ([]string, error) {
	user, err := s.getUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	names, err := s.repomanager.Files(s.db).ListNamesByOwner(ctx, user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return names, nil
}

// Download streams fileName to send in chunkSize pieces. Chunks are numbered
// from zero and every frame carries the same total count. Before the first
// frame is produced, the stored file must exist and match the recorded size;
// a mismatch yields common.ErrIntegrity and no frames at all. The download is
// recorded in the audit trail after the last frame.
func (s *FileService) Download(ctx context.Context, userName string, fileName string, send func(chunkNumber, totalChunks int64, data []byte) error) error {
	user, err := s.getUser(ctx, userName)
	if err != nil {
		return err
	}

	record, err := s.getRecord(ctx, user.ID, fileName)
	if err != nil {
		return err
	}

	size, err := s.store.Size(record.FilePath)
	if err != nil || size != record.FileSize {
		return common.ErrIntegrity
	}

	body, err := s.store.Open(record.FilePath)
	if err != nil {
		return common.ErrIntegrity
	}
	defer body.Close()

	totalChunks := (size + s.chunkSize - 1) / s.chunkSize

	buf := make([]byte, s.chunkSize)
	for i := int64(0); i < totalChunks; i++ {
		n, err := io.ReadFull(body, buf)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("error reading file: %w", err)
		}
		if err := send(i, totalChunks, buf[:n]); err != nil {
			return err
		}
	}

	s.audit(ctx, s.db, user.ID, models.ActionDownload, record)

	return nil
}

// Delete removes fileName for userName: the disk copy goes first, then the
// metadata row and its audit entry in one transaction. If the disk removal
// fails the record is kept, so the file stays visible and the operation can
// be retried.
func (s *FileService) Delete(ctx context.Context, userName string, fileName string) error {
	user, err := s.getUser(ctx, userName)
	if err != nil {
		return err
	}

	record, err := s.getRecord(ctx, user.ID, fileName)
	if err != nil {
		return err
	}

	if err := s.store.Remove(record.FilePath); err != nil {
		return fmt.Errorf("error removing file: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Files(tx).Delete(ctx, record.ID); err != nil {
			return err
		}
		return s.newAudit(ctx, tx, user.ID, models.ActionDelete, record)
	})
	if err != nil {
		return common.ErrorInternal
	}

	if s.mirror.Enabled() {
		if err := s.mirror.Delete(ctx, mirrorKey(user.ID, record.ID)); err != nil {
			s.logger.Warn(ctx, "mirror delete failed", "file", record.FileName, "error", err)
		}
	}

	return nil
}

// --- helpers below ---

func (s *FileService) getUser(ctx context.Context, userName string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *FileService) getRecord(ctx context.Context, userID string, fileName string) (*models.FileRecord, error) {
	record, err := s.repomanager.Files(s.db).GetByOwnerAndName(ctx, userID, fileName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return record, nil
}

func (s *FileService) newAudit(ctx context.Context, db dbx.DBTX, userID string, actionType string, record *models.FileRecord) error {
	return s.repomanager.Actions(db).Create(ctx, &models.UserAction{
		ActionID:   uuid.NewString(),
		UserID:     userID,
		ActionType: actionType,
		FileID:     record.ID,
		Timestamp:  time.Now(),
		Detail:     record.FileName,
	})
}

// audit records an entry outside any transaction; a failure is logged but
// does not fail the operation that already succeeded.
func (s *FileService) audit(ctx context.Context, db dbx.DBTX, userID string, actionType string, record *models.FileRecord) {
	if err := s.newAudit(ctx, db, userID, actionType, record); err != nil {
		s.logger.Warn(ctx, "failed to record audit entry", "action", actionType, "file", record.FileName, "error", err)
	}
}

func mirrorKey(userID, fileID string) string {
	return fmt.Sprintf("users/%s/%s", userID, fileID)
}
