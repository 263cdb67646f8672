package commands

import (
	"errors"

	"ckms/internal/core/domain/model/store"
	"ckms/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a request to register a location in the
// franchise network.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	name      string
	address   string
	phone     string
	storeType store.Type

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a store.
func NewCreateStoreCommand(name, address, phone string, storeType store.Type) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setStoreType(storeType),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// Name returns the store name.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Address returns the store address.
func (c CreateStoreCommand) Address() string {
	return c.address
}

// Phone returns the store phone number.
func (c CreateStoreCommand) Phone() string {
	return c.phone
}

// StoreType returns whether this is a franchise store or the central kitchen.
func (c CreateStoreCommand) StoreType() store.Type {
	return c.storeType
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateStoreCommand) setStoreType(storeType store.Type) error {
	if err := storeType.Validate(); err != nil {
		return err
	}
	c.storeType = storeType
	return nil
}
