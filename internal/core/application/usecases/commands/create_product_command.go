package commands

import (
	"errors"

	"ckms/internal/core/domain/model/catalog"
	"ckms/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrSKUIsRequired  = errors.New("sku is required")
	ErrNameIsRequired = errors.New("name is required")
)

// CreateProductCommand represents a request to add a product to the
// catalog. SKU uniqueness is enforced by the database; a duplicate
// surfaces as a Conflict error on commit.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	sku         string
	name        string
	description string
	unit        string
	price       float64
	productType catalog.ProductType
	categoryID  *int64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(
	sku string,
	name string,
	description string,
	unit string,
	price float64,
	productType catalog.ProductType,
	categoryID *int64,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		unit:        unit,
		price:       price,
		categoryID:  categoryID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setName(name),
		cmd.setProductType(productType),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// SKU returns the product's stock keeping unit.
func (c CreateProductCommand) SKU() string {
	return c.sku
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Unit returns the unit of measure.
func (c CreateProductCommand) Unit() string {
	return c.unit
}

// Price returns the catalog price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// ProductType returns the production stage classification.
func (c CreateProductCommand) ProductType() catalog.ProductType {
	return c.productType
}

// CategoryID returns the owning category, or nil.
func (c CreateProductCommand) CategoryID() *int64 {
	return c.categoryID
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setProductType(productType catalog.ProductType) error {
	if err := productType.Validate(); err != nil {
		return err
	}
	c.productType = productType
	return nil
}
