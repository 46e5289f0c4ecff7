// Package files provides a PostgreSQL-backed repository for file metadata
// records.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okarpov/datafreezer/internal/common"
	"github.com/okarpov/datafreezer/internal/dbx"
	"github.com/okarpov/datafreezer/internal/server/models"
)

// PostgresRepository implements file record storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new file record. Exactly one row must be affected.
func (r *PostgresRepository) Create(ctx context.Context, file *models.FileRecord) error {
	query := `
		INSERT INTO files (file_id, user_id, file_name, file_path, file_size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	res, err := r.db.ExecContext(ctx, query,
		file.ID, file.UserID, file.FileName, file.FilePath, file.FileSize, file.UploadedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// GetByOwnerAndName returns the record for (userID, fileName). The lookup is
// scoped to the owner so a file held by another user is indistinguishable
// from an absent one.
func (r *PostgresRepository) GetByOwnerAndName(ctx context.Context, userID string, fileName string) (*models.FileRecord, error) {
	query := `
		SELECT file_id, user_id, file_name, file_path, file_size, uploaded_at
		FROM files
		WHERE user_id = $1 AND file_name = $2
	`
	file := &models.FileRecord{}
	if err := r.db.QueryRowContext(ctx, query, userID, fileName).Scan(
		&file.ID, &file.UserID, &file.FileName, &file.FilePath, &file.FileSize, &file.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// ListNamesByOwner returns the display names of all files owned by userID.
func (r *PostgresRepository) ListNamesByOwner(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT file_name FROM files
		WHERE user_id = $1
		ORDER BY uploaded_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the record for fileID. Exactly one row must be affected.
func (r *PostgresRepository) Delete(ctx context.Context, fileID string) error {
	query := `DELETE FROM files WHERE file_id = $1`
	res, err := r.db.ExecContext(ctx, query, fileID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}
