package order

import (
	"errors"
	"fmt"

	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem or RestoreItem")

// Item is an order line: a product, the quantity the store ordered, and a
// unit-price snapshot taken when the line was created. The snapshot is
// never re-read from the catalog, so later price changes do not affect
// existing orders.
type Item struct {
	id        int64
	productID int64
	quantity  int
	unitPrice float64
	notes     string

	guard guard.ConstructorGuard
}

// NewItem creates a new order line with validation.
// The unit price is the snapshot taken from the catalog at creation time.
func NewItem(productID int64, quantity int, unitPrice float64, notes string) (*Item, error) {
	item := &Item{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistent storage.
func RestoreItem(id, productID int64, quantity int, unitPrice float64, notes string) (*Item, error) {
	item, err := NewItem(productID, quantity, unitPrice, notes)
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

// ProductID returns the catalog product this line orders.
func (i *Item) ProductID() int64 {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at creation.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Notes returns the free-form note attached to the line.
func (i *Item) Notes() string {
	return i.notes
}

// LineTotal returns quantity times the unit-price snapshot.
func (i *Item) LineTotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
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

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%v is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
