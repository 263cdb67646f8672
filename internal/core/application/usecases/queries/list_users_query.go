package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves all user profiles.
type ListUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a query for all users.
func NewListUsersQuery() ListUsersQuery {
	return ListUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// UserView is the read model for one user profile. The ID is the
// auth-provider subject, carried as a string.
type UserView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName,omitempty"`
	Role      string `json:"role"`
	StoreID   *int64 `json:"storeId,omitempty"`
	StoreName string `json:"storeName,omitempty"`
	Active    bool   `json:"active"`
}
