package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarpov/datafreezer/internal/common"
	"github.com/okarpov/datafreezer/internal/server/models"
)

func TestTransfer_UploadOutOfOrder(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{},
		a: &fakeActionsRepo{},
	}
	handle := &memHandle{}
	store := &fakeStore{handle: handle, createName: "a_1.txt"}
	mirror := &fakeMirror{enabled: true}
	s := newFileService(t, db, rm, store, mirror, 4)

	tr := s.NewTransfer()

	done, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 1, TotalChunks: 2, Data: []byte("o")})
	require.NoError(t, err)
	assert.False(t, done)

	done, err = tr.Ingest(&Chunk{ChunkNumber: 0, Data: []byte("hell")})
	require.NoError(t, err)
	assert.True(t, done)

	store.openData = handle.buf
	record, err := tr.Complete(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "a_1.txt", record.FileName)
	assert.Equal(t, "/store/a_1.txt", record.FilePath)
	assert.Equal(t, int64(5), record.FileSize)
	assert.Equal(t, "u1", record.UserID)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.UploadedAt.IsZero())

	assert.Equal(t, []byte("hello"), handle.buf)
	assert.True(t, handle.closed)

	require.Len(t, rm.f.created, 1)
	assert.Equal(t, record, rm.f.created[0])

	require.Len(t, rm.a.entries, 1)
	assert.Equal(t, models.ActionUpload, rm.a.entries[0].ActionType)
	assert.Equal(t, record.ID, rm.a.entries[0].FileID)
	assert.Equal(t, "a_1.txt", rm.a.entries[0].Detail)

	require.Len(t, mirror.putKeys, 1)
	assert.Equal(t, "users/u1/"+record.ID, mirror.putKeys[0])
	assert.Equal(t, []byte("hello"), mirror.putData[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_FirstFrameFixesMetadata(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}}}
	store := &fakeStore{handle: &memHandle{}}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	tr := s.NewTransfer()

	_, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 2, Data: []byte("hell")})
	require.NoError(t, err)

	// A different name and count on a later frame changes nothing.
	done, err := tr.Ingest(&Chunk{UserName: "bob", FileName: "b.txt", ChunkNumber: 1, TotalChunks: 99, Data: []byte("o")})
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "a.txt", tr.FileName())
}

func TestTransfer_FirstFrameValidation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newFileService(t, db, &fakeRepoManager{}, &fakeStore{handle: &memHandle{}}, &fakeMirror{}, 4)

	tests := []struct {
		name  string
		frame *Chunk
	}{
		{"missing user", &Chunk{FileName: "a.txt", TotalChunks: 1}},
		{"missing file name", &Chunk{UserName: "alice", TotalChunks: 1}},
		{"zero chunk count", &Chunk{UserName: "alice", FileName: "a.txt", TotalChunks: 0}},
		{"negative chunk count", &Chunk{UserName: "alice", FileName: "a.txt", TotalChunks: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := s.NewTransfer()
			_, err := tr.Ingest(tt.frame)
			assert.ErrorIs(t, err, common.ErrProtocol)
		})
	}
}

func TestTransfer_ChunkNumberOutOfRange(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newFileService(t, db, &fakeRepoManager{}, &fakeStore{handle: &memHandle{}}, &fakeMirror{}, 4)
	tr := s.NewTransfer()

	_, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 2, TotalChunks: 2, Data: []byte("x")})
	assert.ErrorIs(t, err, common.ErrProtocol)
}

func TestTransfer_OversizedChunk(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newFileService(t, db, &fakeRepoManager{}, &fakeStore{handle: &memHandle{}}, &fakeMirror{}, 4)
	tr := s.NewTransfer()

	_, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 1, Data: []byte("12345")})
	assert.ErrorIs(t, err, common.ErrProtocol)
}

func TestTransfer_DuplicateChunkDoesNotComplete(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newFileService(t, db, &fakeRepoManager{}, &fakeStore{handle: &memHandle{}}, &fakeMirror{}, 4)
	tr := s.NewTransfer()

	done, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 2, Data: []byte("hell")})
	require.NoError(t, err)
	assert.False(t, done)

	// Resending the same chunk must not count as progress.
	done, err = tr.Ingest(&Chunk{ChunkNumber: 0, Data: []byte("hell")})
	require.NoError(t, err)
	assert.False(t, done)
}

func TestTransfer_CompleteBeforeDone(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newFileService(t, db, &fakeRepoManager{}, &fakeStore{handle: &memHandle{}}, &fakeMirror{}, 4)
	tr := s.NewTransfer()

	_, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 2, Data: []byte("hell")})
	require.NoError(t, err)

	_, err = tr.Complete(context.Background())
	assert.ErrorIs(t, err, common.ErrProtocol)
}

func TestTransfer_AbortRemovesPartialFile(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	handle := &memHandle{}
	store := &fakeStore{handle: handle}
	s := newFileService(t, db, &fakeRepoManager{}, store, &fakeMirror{}, 4)
	tr := s.NewTransfer()

	_, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 2, Data: []byte("hell")})
	require.NoError(t, err)

	tr.Abort(context.Background())
	assert.True(t, handle.closed)
	assert.Equal(t, []string{"/store/a.txt"}, store.removed)

	// Aborting twice is a no-op.
	tr.Abort(context.Background())
	assert.Len(t, store.removed, 1)

	// An aborted transfer accepts nothing further.
	_, err = tr.Ingest(&Chunk{ChunkNumber: 1, Data: []byte("o")})
	assert.ErrorIs(t, err, common.ErrProtocol)
}

func TestTransfer_AbortBeforeFirstFrame(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	store := &fakeStore{handle: &memHandle{}}
	s := newFileService(t, db, &fakeRepoManager{}, store, &fakeMirror{}, 4)
	tr := s.NewTransfer()

	tr.Abort(context.Background())
	assert.Empty(t, store.removed)
}

func TestTransfer_CommitFailureRemovesFile(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{createErr: errors.New("constraint violation")},
		a: &fakeActionsRepo{},
	}
	handle := &memHandle{}
	store := &fakeStore{handle: handle}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	tr := s.NewTransfer()
	done, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 1, Data: []byte("hi")})
	require.NoError(t, err)
	require.True(t, done)

	_, err = tr.Complete(context.Background())
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.Equal(t, []string{"/store/a.txt"}, store.removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfer_UnknownOwnerOnComplete(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrorNotFound}}
	store := &fakeStore{handle: &memHandle{}}
	s := newFileService(t, db, rm, store, &fakeMirror{}, 4)

	tr := s.NewTransfer()
	done, err := tr.Ingest(&Chunk{UserName: "ghost", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 1, Data: []byte("hi")})
	require.NoError(t, err)
	require.True(t, done)

	_, err = tr.Complete(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, []string{"/store/a.txt"}, store.removed)
}

func TestTransfer_MirrorFailureDoesNotFailUpload(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "alice"}},
		f: &fakeFilesRepo{},
		a: &fakeActionsRepo{},
	}
	store := &fakeStore{handle: &memHandle{}}
	mirror := &fakeMirror{enabled: true, putErr: errors.New("s3 down")}
	s := newFileService(t, db, rm, store, mirror, 4)

	tr := s.NewTransfer()
	done, err := tr.Ingest(&Chunk{UserName: "alice", FileName: "a.txt", ChunkNumber: 0, TotalChunks: 1, Data: []byte("hi")})
	require.NoError(t, err)
	require.True(t, done)

	_, err = tr.Complete(context.Background())
	assert.NoError(t, err)
}
