package models

import "time"

// SessionToken is one issued login token. A user may hold several valid
// tokens at once; logging in never invalidates earlier ones.
type SessionToken struct {
	UserName  string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
