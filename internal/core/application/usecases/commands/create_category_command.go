package commands

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a catalog category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a catalog category.
func NewCreateCategoryCommand(name, description string) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

// Description returns the category description.
func (c CreateCategoryCommand) Description() string {
	return c.description
}

func (c *CreateCategoryCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
