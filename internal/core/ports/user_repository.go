package ports

import (
	"context"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email lookups are case-insensitive; uniqueness is enforced by the store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies only the provided fields map to the user document and
	// returns the updated user.
	Update(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
}
