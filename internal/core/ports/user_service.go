package ports

import (
	"context"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	LinkedinEmail string
}

// UpdateProfileInput carries the accepted profile mutations. Nil pointers
// mean "leave unchanged". A password change requires all three password
// fields together.
type UpdateProfileInput struct {
	FirstName       *string
	LastName        *string
	Email           *string
	CurrentPassword *string
	NewPassword     *string
	ConfirmPassword *string
}

// AuthService implements registration, login, token verification and
// profile management.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Authenticate verifies the token signature and expiry and resolves the
	// user id it was issued for. It has no side effects.
	Authenticate(ctx context.Context, token string) (string, error)
	// Logout revokes the token for its remaining lifetime.
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}

// TokenDenylist records revoked tokens until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
