package commands

import (
	"context"

	"ckms/internal/core/domain/model/store"
)

// CreateStoreCommandHandler handles store registration.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created store.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (*store.Store, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := store.NewStore(cmd.Name(), cmd.Address(), cmd.Phone(), cmd.StoreType())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoreRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
