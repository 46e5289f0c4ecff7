// Package actions provides a PostgreSQL-backed repository for the
// append-only audit trail.
package actions

import (
	"context"
	"fmt"

	"github.com/okarpov/datafreezer/internal/dbx"
	"github.com/okarpov/datafreezer/internal/server/models"
)

// PostgresRepository implements audit entry storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends one audit entry.
func (r *PostgresRepository) Create(ctx context.Context, action *models.UserAction) error {
	query := `
		INSERT INTO user_actions (action_id, user_id, action_type, file_id, action_timestamp, action_details)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		action.ActionID, action.UserID, action.ActionType, action.FileID, action.Timestamp, action.Detail); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
