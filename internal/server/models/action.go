package models

import "time"

// Action types recorded in the audit trail.
const (
	ActionUpload   = "Upload"
	ActionDownload = "Download"
	ActionDelete   = "Delete"
)

// UserAction is one append-only audit entry recording a user-initiated
// operation against a file. Entries are never mutated or deleted.
type UserAction struct {
	ActionID   string
	UserID     string
	ActionType string
	FileID     string
	Timestamp  time.Time
	Detail     string
}
