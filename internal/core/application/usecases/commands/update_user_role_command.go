package commands

import (
	"errors"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/core/domain/model/user"
	"ckms/internal/pkg/guard"
)

var ErrUpdateUserRoleCommandIsNotConstructed = errors.New(
	"UpdateUserRoleCommand must be created via NewUpdateUserRoleCommand constructor",
)

// UpdateUserRoleCommand represents a request to change a user's role and
// store binding.
type UpdateUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	role    user.Role
	storeID *int64

	guard guard.ConstructorGuard
}

// NewUpdateUserRoleCommand creates a command to change a user's role.
func NewUpdateUserRoleCommand(userID kernel.UUID, role user.Role, storeID *int64) (UpdateUserRoleCommand, error) {
	cmd := UpdateUserRoleCommand{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
	); err != nil {
		return UpdateUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserRoleCommandIsNotConstructed)
}

// UserID returns the auth-provider subject of the user being changed.
func (c UpdateUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the new role.
func (c UpdateUserRoleCommand) Role() user.Role {
	return c.role
}

// StoreID returns the new store binding, or nil.
func (c UpdateUserRoleCommand) StoreID() *int64 {
	return c.storeID
}

func (c *UpdateUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *UpdateUserRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
