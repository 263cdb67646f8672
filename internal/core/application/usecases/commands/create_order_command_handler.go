package commands

import (
	"context"

	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/ports"
	"ckms/internal/pkg/codes"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the order code, snapshots catalog prices onto the requested
// lines, and persists the order in pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created
// aggregate. Uses a transaction so the order and its lines are persisted
// atomically or not at all.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	code, err := codes.Generate(codes.OrderPrefix)
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

	items, err := snapshotItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(code, cmd.StoreID(), cmd.CreatedBy(), cmd.DeliveryDate(), cmd.Notes(), items)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// snapshotItems resolves the requested products and builds order lines
// with the current catalog price copied onto each line.
func snapshotItems(
	ctx context.Context,
	products ports.ProductRepository,
	inputs []OrderItemInput,
) ([]*order.Item, error) {
	ids := make([]int64, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.ProductID)
	}

	byID, err := products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(inputs))
	for _, input := range inputs {
		product := byID[input.ProductID]
		item, err := order.NewItem(input.ProductID, input.Quantity, product.Price(), input.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
