package ports

import (
	"context"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user profiles.
// Authentication lives with the external provider; these rows carry role
// assignment and store scoping.
type UserRepository interface {
	// Add persists a new user profile.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user profile.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user profile by the auth provider's subject UUID.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
