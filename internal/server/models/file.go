package models

import "time"

// FileRecord binds a stored file's identity, owner, on-disk path and size.
// The record is created together with its Upload audit entry once the last
// chunk of an upload has been written.
type FileRecord struct {
	// ID is assigned when the upload completes.
	ID string
	// UserID is the owner of the file.
	UserID string
	// FileName is the collision-resolved display name, unique within the
	// owner's namespace as of the lookup that preceded creation.
	FileName string
	// FilePath is the server-side storage path.
	FilePath string
	// FileSize is the final byte size of the stored file.
	FileSize int64

	UploadedAt time.Time
}
