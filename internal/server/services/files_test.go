package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarpov/datafreezer/internal/common"
	"github.com/okarpov/datafreezer/internal/logging"
	"github.com/okarpov/datafreezer/internal/server/config"
	"github.com/okarpov/datafreezer/internal/server/models"
	"github.com/okarpov/datafreezer/internal/server/storage"
)

// --- fakes for the storage layer ---

type memHandle struct {
	buf      []byte
	closed   bool
	writeErr error
	sizeErr  error
}

func (h *memHandle) WriteAt(p []byte, off int64) (int, error) {
	if h.writeErr != nil {
		return 0, h.writeErr
	}
	if need := off + int64(len(p)); int64(len(h.buf)) < need {
		grown := make([]byte, need)
		copy(grown, h.buf)
		h.buf = grown
	}
	copy(h.buf[off:], p)
	return len(p), nil
}

func (h *memHandle) Close() error { h.closed = true; return nil }

func (h *memHandle) Size() (int64, error) {
	if h.sizeErr != nil {
		return 0, h.sizeErr
	}
	return int64(len(h.buf)), nil
}

type fakeStore struct {
	handle     *memHandle
	createName string
	createErr  error

	openData []byte
	openErr  error

	sizeOut int64
	sizeErr error

	removed   []string
	removeErr error
}

func (f *fakeStore) CreateNew(desired string) (string, storage.Handle, error) {
	if f.createErr != nil {
		return "", nil, f.createErr
	}
	name := f.createName
	if name == "" {
		name = desired
	}
	return name, f.handle, nil
}

func (f *fakeStore) Path(name string) string { return "/store/" + name }

func (f *fakeStore) Open(path string) (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(bytes.NewReader(f.openData)), nil
}

func (f *fakeStore) Size(path string) (int64, error) {
	if f.sizeErr != nil {
		return 0, f.sizeErr
	}
	return f.sizeOut, nil
}

func (f *fakeStore) Remove(path string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, path)
	return nil
}

type fakeMirror struct {
	enabled bool

	putKeys []string
	putData [][]byte
	putErr  error

	deleteKeys []string
	deleteErr  error
}

func (m *fakeMirror) Enabled() bool { return m.enabled }

func (m *fakeMirror) Put(ctx context.Context, key string, body io.Reader) error {
	if m.putErr != nil {
		return m.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.putKeys = append(m.putKeys, key)
	m.putData = append(m.putData, data)
	return nil
}

func (m *fakeMirror) Delete(ctx context.Context, key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleteKeys = append(m.deleteKeys, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

func newFileService(t *testing.T, db *sql.DB, rm *fakeRepoManager, store *fakeStore, mirror *fakeMirror, chunkSize int64) *FileService {
	t.Helper()
	cfg := &config.Config{ChunkSize: chunkSize}
	return NewFileService(db, rm, store, mirror, cfg, nopLogger{})
}

// downloadFrame captures one frame produced by Download.
type downloadFrame struct {
	chunkNumber int64
	totalChunks int64
	data        []byte
}

func collectFrames(frames *[]downloadFrame) func(chunkNumber, totalChunks int64, data []byte) error {
	return func(chunkNumber, totalChunks int64, data []byte) error {
		*frames = append(*frames, downloadFrame{chunkNumber, totalChunks, append([]byte(nil), data...)})
		return nil
	}
}

// --- List ---

func TestList_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{names: []string{"a.txt", "b.txt"}},
	}
	s := newFileService(t, db, rm, &fakeStore{}, &fakeMirror{}, 4)

	names, err := s.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestList_UnknownUser(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrorNotFound}}
	s := newFileService(t, db, rm, &fakeStore{}, &fakeMirror{}, 4)

	_, err := s.List(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

// --- Download ---

func TestDownload_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.txt", FilePath: "/store/a.txt", FileSize: 5}},
		a: &fakeActionsRepo{},
	}
	store := &fakeStore{sizeOut: 5, openData: []byte("hello")}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	var frames []downloadFrame
	err := s.Download(context.Background(), "alice", "a.txt", collectFrames(&frames))
	require.NoError(t, err)

	require.Len(t, frames, 2)
	assert.Equal(t, int64(0), frames[0].chunkNumber)
	assert.Equal(t, int64(2), frames[0].totalChunks)
	assert.Equal(t, []byte("hell"), frames[0].data)
	assert.Equal(t, int64(1), frames[1].chunkNumber)
	assert.Equal(t, int64(2), frames[1].totalChunks)
	assert.Equal(t, []byte("o"), frames[1].data)

	require.Len(t, rm.a.entries, 1)
	assert.Equal(t, models.ActionDownload, rm.a.entries[0].ActionType)
	assert.Equal(t, "f1", rm.a.entries[0].FileID)
}

func TestDownload_ExactMultipleOfChunkSize(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.bin", FilePath: "/store/a.bin", FileSize: 8}},
		a: &fakeActionsRepo{},
	}
	store := &fakeStore{sizeOut: 8, openData: []byte("12345678")}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	var frames []downloadFrame
	err := s.Download(context.Background(), "alice", "a.bin", collectFrames(&frames))
	require.NoError(t, err)

	require.Len(t, frames, 2)
	assert.Equal(t, []byte("1234"), frames[0].data)
	assert.Equal(t, []byte("5678"), frames[1].data)
}

func TestDownload_UnknownFile(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getErr: common.ErrorNotFound},
	}
	s := newFileService(t, db, rm, &fakeStore{}, &fakeMirror{}, 4)

	err := s.Download(context.Background(), "alice", "missing.txt", collectFrames(new([]downloadFrame)))
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDownload_SizeMismatchSendsNothing(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.txt", FilePath: "/store/a.txt", FileSize: 5}},
		a: &fakeActionsRepo{},
	}
	store := &fakeStore{sizeOut: 3, openData: []byte("hel")}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	var frames []downloadFrame
	err := s.Download(context.Background(), "alice", "a.txt", collectFrames(&frames))
	assert.ErrorIs(t, err, common.ErrIntegrity)
	assert.Empty(t, frames)
	assert.Empty(t, rm.a.entries)
}

func TestDownload_MissingOnDisk(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.txt", FilePath: "/store/a.txt", FileSize: 5}},
	}
	store := &fakeStore{sizeErr: errors.New("no such file")}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	err := s.Download(context.Background(), "alice", "a.txt", collectFrames(new([]downloadFrame)))
	assert.ErrorIs(t, err, common.ErrIntegrity)
}

func TestDownload_SendErrorPropagates(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.txt", FilePath: "/store/a.txt", FileSize: 5}},
		a: &fakeActionsRepo{},
	}
	store := &fakeStore{sizeOut: 5, openData: []byte("hello")}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	sendErr := errors.New("stream closed")
	err := s.Download(context.Background(), "alice", "a.txt", func(int64, int64, []byte) error { return sendErr })
	assert.ErrorIs(t, err, sendErr)
	assert.Empty(t, rm.a.entries)
}

// --- Delete ---

func TestDelete_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.txt", FilePath: "/store/a.txt", FileSize: 5}},
		a: &fakeActionsRepo{},
	}
	store := &fakeStore{}
	mirror := &fakeMirror{enabled: true}
	s := newFileService(t, db, rm, store, mirror, 4)

	err := s.Delete(context.Background(), "alice", "a.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"/store/a.txt"}, store.removed)
	assert.Equal(t, []string{"f1"}, rm.f.deleted)

	require.Len(t, rm.a.entries, 1)
	assert.Equal(t, models.ActionDelete, rm.a.entries[0].ActionType)
	assert.Equal(t, "f1", rm.a.entries[0].FileID)

	assert.Equal(t, []string{"users/u1/f1"}, mirror.deleteKeys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DiskFailureKeepsRecord(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.txt", FilePath: "/store/a.txt", FileSize: 5}},
		a: &fakeActionsRepo{},
	}
	store := &fakeStore{removeErr: errors.New("permission denied")}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	err := s.Delete(context.Background(), "alice", "a.txt")
	require.Error(t, err)

	assert.Empty(t, rm.f.deleted)
	assert.Empty(t, rm.a.entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_UnknownFile(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getErr: common.ErrorNotFound},
	}
	s := newFileService(t, db, rm, &fakeStore{}, &fakeMirror{}, 4)

	err := s.Delete(context.Background(), "alice", "missing.txt")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_MirrorFailureIsSwallowed(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{getOut: &models.FileRecord{ID: "f1", UserID: "u1", FileName: "a.txt", FilePath: "/store/a.txt", FileSize: 5}},
		a: &fakeActionsRepo{},
	}
	mirror := &fakeMirror{enabled: true, deleteErr: errors.New("s3 down")}
	s := newFileService(t, db, rm, &fakeStore{}, mirror, 4)

	err := s.Delete(context.Background(), "alice", "a.txt")
	assert.NoError(t, err)
}
