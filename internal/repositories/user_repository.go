package repositories

import (
	"context"

	"github.com/HimeshRasaily/FlowArt/internal/models"
)

// UserRepository defines the interface for user data access. Lookups return
// (nil, nil) when no record matches, so callers own the "not found" policy.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	// UpdateFields applies a partial column map to one record and returns the
	// number of records changed.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	// Query returns the users matching the predicate, in insertion order.
	Query(ctx context.Context, query UserQuery) ([]models.User, error)
	// ValidID reports whether id is well-formed for this store.
	ValidID(id string) bool
}
