package catalog

import (
	"errors"

	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// Category groups related catalog products.
type Category struct {
	id          int64
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCategory creates a new Category with validation.
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Category{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreCategory reconstructs a Category from persistent storage.
func RestoreCategory(id int64, name, description string) (*Category, error) {
	c, err := NewCategory(name, description)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// Validate ensures the Category was created through one of its constructors.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// AssignID records the identifier generated by storage. It can be set
// only once, on an unsaved category.
func (c *Category) AssignID(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Category) ID() int64           { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }
