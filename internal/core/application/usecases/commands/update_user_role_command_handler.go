package commands

import (
	"context"

	"ckms/internal/core/domain/model/user"
)

// UpdateUserRoleCommandHandler handles role changes on user profiles.
type UpdateUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserRoleCommandHandler creates a handler for user role changes.
func NewUpdateUserRoleCommandHandler(uowFactory UserUoWFactory) UpdateUserRoleCommandHandler {
	return UpdateUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated user profile.
func (h UpdateUserRoleCommandHandler) Handle(ctx context.Context, cmd UpdateUserRoleCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeRole(cmd.Role(), cmd.StoreID()); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
