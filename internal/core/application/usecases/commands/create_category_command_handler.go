package commands

import (
	"context"

	"ckms/internal/core/domain/model/catalog"
)

// CreateCategoryCommandHandler handles catalog category creation.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created category.
func (h CreateCategoryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCategoryCommand,
) (*catalog.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := catalog.NewCategory(cmd.Name(), cmd.Description())
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

	if err = uow.CategoryRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
