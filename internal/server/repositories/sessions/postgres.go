// Package sessions provides a PostgreSQL-backed repository for issued
// session tokens.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okarpov/datafreezer/internal/common"
	"github.com/okarpov/datafreezer/internal/dbx"
	"github.com/okarpov/datafreezer/internal/server/models"
)

// PostgresRepository implements session token storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a freshly issued token for userName.
func (r *PostgresRepository) Create(ctx context.Context, userName string, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO session_tokens (username, token, expiration, created_at)
		VALUES ($1, $2, $3, now())
	`
	if _, err := r.db.ExecContext(ctx, query, userName, token, expiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Find returns the session token row for the given token string.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.SessionToken, error) {
	query := `
		SELECT username, token, expiration, created_at
		FROM session_tokens
		WHERE token = $1
	`
	session := &models.SessionToken{}
	if err := r.db.QueryRowContext(ctx, query, token).Scan(
		&session.UserName, &session.Token, &session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return session, nil
}
