package commands

import (
	"errors"
	"time"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStoreIDIsRequired   = errors.New("store id is required")
	ErrItemsAreRequired    = errors.New("at least one item is required")
	ErrProductIDIsRequired = errors.New("product id is required")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
)

// OrderItemInput is one requested order line: which product and how much.
// Prices are not accepted from the caller; the handler snapshots them from
// the catalog.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
	Notes     string
}

// CreateOrderCommand represents a store's request to create a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(storeID, userID, &deliveryDate, "rush", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	storeID      int64
	createdBy    kernel.UUID
	deliveryDate *time.Time
	notes        string
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the store and creator are set and every requested line
// names a product with a positive quantity.
func NewCreateOrderCommand(
	storeID int64,
	createdBy kernel.UUID,
	deliveryDate *time.Time,
	notes string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryDate: deliveryDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setCreatedBy(createdBy),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// StoreID returns the store placing the order.
func (c CreateOrderCommand) StoreID() int64 {
	return c.storeID
}

// CreatedBy returns the identity of the submitting user.
func (c CreateOrderCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

// DeliveryDate returns the requested delivery date, or nil.
func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// Notes returns the order note.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return ErrStoreIDIsRequired
	}
	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	c.createdBy = createdBy
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}
	c.items = items
	return nil
}

// validateItemInputs is shared with UpdateOrderCommand, which accepts the
// same line shape.
func validateItemInputs(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.ProductID <= 0 {
			return ErrProductIDIsRequired
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}
	return nil
}
