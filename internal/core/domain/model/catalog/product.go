// Package catalog contains the products the central kitchen produces and
// the categories they are grouped under. Order lines snapshot product
// prices at creation time, so catalog edits never rewrite order history.
package catalog

import (
	"errors"
	"fmt"

	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// ProductType classifies what stage of production a product is at.
type ProductType int

const (
	ProductTypeUnknown ProductType = iota

	// Material is a raw ingredient.
	Material

	// SemiFinished is a prepared component, not yet saleable.
	SemiFinished

	// Finished is a saleable good shipped to stores.
	Finished
)

func getProductTypeStrings() map[ProductType]string {
	return map[ProductType]string{
		ProductTypeUnknown: "unknown",
		Material:           "material",
		SemiFinished:       "semi_finished",
		Finished:           "finished",
	}
}

func getValidProductTypeStrings() map[ProductType]string {
	//nolint:exhaustive // ProductTypeUnknown is intentionally excluded as it's invalid
	return map[ProductType]string{
		Material:     "material",
		SemiFinished: "semi_finished",
		Finished:     "finished",
	}
}

// ProductTypeFromString parses the persisted string representation of a
// product type.
func ProductTypeFromString(s string) (ProductType, error) {
	for pt, str := range getValidProductTypeStrings() {
		if str == s {
			return pt, nil
		}
	}
	return ProductTypeUnknown, errs.NewValueIsInvalidErrorWithCause("type is invalid",
		fmt.Errorf("%q is not a valid product type", s))
}

// Validate checks if the ProductType value is valid.
func (t ProductType) Validate() error {
	if _, ok := getValidProductTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid",
			fmt.Errorf("%d is not a valid product type", t))
	}
	return nil
}

// String returns the lowercase name of the type. Returns "unknown" for
// invalid values.
func (t ProductType) String() string {
	if str, ok := getProductTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Product is a catalog entry: something the kitchen makes or stocks.
// The SKU is unique across the catalog; the database enforces it with a
// unique index and duplicate writes surface as Conflict errors.
type Product struct {
	id          int64
	sku         string
	name        string
	description string
	unit        string
	price       float64
	productType ProductType
	categoryID  *int64
	active      bool

	guard guard.ConstructorGuard
}

// NewProduct creates a new active Product with validation.
func NewProduct(
	sku string,
	name string,
	description string,
	unit string,
	price float64,
	productType ProductType,
	categoryID *int64,
) (*Product, error) {
	p := &Product{
		description: description,
		categoryID:  categoryID,
		active:      true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setSKU(sku),
		p.setName(name),
		p.setUnit(unit),
		p.setPrice(price),
		p.setProductType(productType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(
	id int64,
	sku string,
	name string,
	description string,
	unit string,
	price float64,
	productType ProductType,
	categoryID *int64,
	active bool,
) (*Product, error) {
	p, err := NewProduct(sku, name, description, unit, price, productType, categoryID)
	if err != nil {
		return nil, err
	}
	p.id = id
	p.active = active
	return p, nil
}

// Validate ensures the Product was created through one of its constructors.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// AssignID records the identifier generated by storage. It can be set
// only once, on an unsaved product.
func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Product) ID() int64           { return p.id }
func (p *Product) SKU() string         { return p.sku }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Unit() string        { return p.unit }
func (p *Product) Price() float64      { return p.price }
func (p *Product) Type() ProductType   { return p.productType }
func (p *Product) CategoryID() *int64  { return p.categoryID }
func (p *Product) IsActive() bool      { return p.active }

// Update changes the editable fields of the product. The SKU is immutable
// after creation; order lines keep their own price snapshots, so price
// changes here affect only future orders.
func (p *Product) Update(
	name string,
	description string,
	unit string,
	price float64,
	productType ProductType,
	categoryID *int64,
	active bool,
) error {
	if err := errors.Join(
		p.setName(name),
		p.setUnit(unit),
		p.setPrice(price),
		p.setProductType(productType),
	); err != nil {
		return err
	}

	p.description = description
	p.categoryID = categoryID
	p.active = active
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	p.unit = unit
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setProductType(productType ProductType) error {
	if err := productType.Validate(); err != nil {
		return err
	}
	p.productType = productType
	return nil
}
