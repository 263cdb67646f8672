package commands

import (
	"context"

	"ckms/internal/core/domain/model/catalog"
)

// UpdateProductCommandHandler handles catalog product edits.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product edits.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated product.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*catalog.Product, error) {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Description(), cmd.Unit(),
		cmd.Price(), cmd.ProductType(), cmd.CategoryID(), cmd.Active()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
