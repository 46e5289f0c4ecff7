package sessions

import (
	"context"
	"time"

	"github.com/okarpov/datafreezer/internal/server/models"
)

// Repository stores issued session tokens. Rows are never deleted; an
// expired token simply stops validating.
type Repository interface {
	Create(ctx context.Context, userName string, token string, expiresAt time.Time) error
	Find(ctx context.Context, token string) (*models.SessionToken, error)
}
