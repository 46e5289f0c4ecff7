package actions

import (
	"context"

	"github.com/okarpov/datafreezer/internal/server/models"
)

// Repository appends audit entries. The trail is append-only: there are no
// update or delete operations by design of the schema.
type Repository interface {
	Create(ctx context.Context, action *models.UserAction) error
}
