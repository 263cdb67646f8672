package commands

import (
	"errors"

	"ckms/internal/core/domain/model/catalog"
	"ckms/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrProductIDIsInvalid = errors.New("product id is invalid")
)

// UpdateProductCommand represents a request to edit a catalog product.
// The SKU is immutable and therefore absent here.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   int64
	name        string
	description string
	unit        string
	price       float64
	productType catalog.ProductType
	categoryID  *int64
	active      bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a catalog product.
func NewUpdateProductCommand(
	productID int64,
	name string,
	description string,
	unit string,
	price float64,
	productType catalog.ProductType,
	categoryID *int64,
	active bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		description: description,
		unit:        unit,
		price:       price,
		categoryID:  categoryID,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setProductType(productType),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product being edited.
func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Unit returns the new unit of measure.
func (c UpdateProductCommand) Unit() string {
	return c.unit
}

// Price returns the new catalog price.
func (c UpdateProductCommand) Price() float64 {
	return c.price
}

// ProductType returns the new classification.
func (c UpdateProductCommand) ProductType() catalog.ProductType {
	return c.productType
}

// CategoryID returns the new owning category, or nil.
func (c UpdateProductCommand) CategoryID() *int64 {
	return c.categoryID
}

// Active reports whether the product stays orderable.
func (c UpdateProductCommand) Active() bool {
	return c.active
}

func (c *UpdateProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}
	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateProductCommand) setProductType(productType catalog.ProductType) error {
	if err := productType.Validate(); err != nil {
		return err
	}
	c.productType = productType
	return nil
}
