package users

import (
	"context"

	"github.com/okarpov/datafreezer/internal/server/models"
)

// Repository reads user accounts. Accounts are created outside the backup
// service, so there is no write path here.
type Repository interface {
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
}
