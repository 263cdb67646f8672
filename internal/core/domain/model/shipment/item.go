package shipment

import (
	"errors"
	"fmt"

	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("shipment Item must be created via NewItem or RestoreItem")

// Item is a shipment line: a quantity shipped against one order line,
// optionally drawn from a specific inventory batch. The batch reference is
// what makes batch-level tracing possible.
type Item struct {
	id          int64
	orderItemID int64
	batchID     *int64
	quantity    int
	note        string

	guard guard.ConstructorGuard
}

// NewItem creates a new shipment line with validation.
func NewItem(orderItemID int64, batchID *int64, quantity int, note string) (*Item, error) {
	item := &Item{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setOrderItemID(orderItemID),
		item.setBatchID(batchID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a shipment line from persistent storage.
func RestoreItem(id, orderItemID int64, batchID *int64, quantity int, note string) (*Item, error) {
	item, err := NewItem(orderItemID, batchID, quantity, note)
	if err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

// Validate ensures the Item was created through one of its constructors.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line's database identifier. Zero for unsaved lines.
func (i *Item) ID() int64 {
	return i.id
}

// AssignID records the identifier generated by storage. It can be set
// only once, on an unsaved line.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	i.id = id
	return nil
}

// OrderItemID returns the order line this shipment line fulfills.
func (i *Item) OrderItemID() int64 {
	return i.orderItemID
}

// BatchID returns the inventory batch the quantity was drawn from, or nil
// when the line is not batch-tracked.
func (i *Item) BatchID() *int64 {
	return i.batchID
}

// Quantity returns the quantity shipped by this line.
func (i *Item) Quantity() int {
	return i.quantity
}

// Note returns the free-form note attached to the line.
func (i *Item) Note() string {
	return i.note
}

// SetQuantity changes the shipped quantity. The caller is responsible for
// re-checking the over-shipment and batch-stock guards before persisting.
func (i *Item) SetQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *Item) setOrderItemID(orderItemID int64) error {
	if orderItemID <= 0 {
		return errs.NewValueIsRequiredError("orderItemId")
	}
	i.orderItemID = orderItemID
	return nil
}

func (i *Item) setBatchID(batchID *int64) error {
	if batchID != nil && *batchID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("batchId is invalid",
			fmt.Errorf("%d is not a valid batch reference", *batchID))
	}
	i.batchID = batchID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
