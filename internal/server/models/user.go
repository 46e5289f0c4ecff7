// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. Users are provisioned outside the backup
// service; the server only ever reads them.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
