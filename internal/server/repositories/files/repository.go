package files

import (
	"context"

	"github.com/okarpov/datafreezer/internal/server/models"
)

// Repository stores file metadata records.
type Repository interface {
	Create(ctx context.Context, file *models.FileRecord) error
	GetByOwnerAndName(ctx context.Context, userID string, fileName string) (*models.FileRecord, error)
	ListNamesByOwner(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, fileID string) error
}
