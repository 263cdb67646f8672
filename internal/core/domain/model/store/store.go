// Package store contains the Store aggregate: a franchise location that
// places orders, or the central kitchen itself.
package store

import (
	"errors"
	"fmt"

	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not
// created through NewStore or RestoreStore.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore")

// Type distinguishes franchise stores from the central kitchen.
type Type int

const (
	TypeUnknown Type = iota

	// TypeStore is a franchise location that places orders.
	TypeStore

	// TypeCentralKitchen is the production site shipments originate from.
	TypeCentralKitchen
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:        "unknown",
		TypeStore:          "store",
		TypeCentralKitchen: "central_kitchen",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeStore:          "store",
		TypeCentralKitchen: "central_kitchen",
	}
}

// TypeFromString parses the persisted string representation of a store type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type is invalid",
		fmt.Errorf("%q is not a valid store type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid",
			fmt.Errorf("%d is not a valid store type", t))
	}
	return nil
}

// String returns the lowercase name of the type. Returns "unknown" for
// invalid values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Store is a physical location in the franchise network.
type Store struct {
	id        int64
	name      string
	address   string
	phone     string
	storeType Type
	active    bool

	guard guard.ConstructorGuard
}

// NewStore creates a new active Store with validation.
func NewStore(name, address, phone string, storeType Type) (*Store, error) {
	s := &Store{
		address: address,
		phone:   phone,
		active:  true,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setName(name),
		s.setType(storeType),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a Store from persistent storage.
func RestoreStore(id int64, name, address, phone string, storeType Type, active bool) (*Store, error) {
	s, err := NewStore(name, address, phone, storeType)
	if err != nil {
		return nil, err
	}
	s.id = id
	s.active = active
	return s, nil
}

// Validate ensures the Store was created through one of its constructors.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// AssignID records the identifier generated by storage. It can be set
// only once, on an unsaved store.
func (s *Store) AssignID(id int64) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	s.id = id
	return nil
}

func (s *Store) ID() int64       { return s.id }
func (s *Store) Name() string    { return s.name }
func (s *Store) Address() string { return s.address }
func (s *Store) Phone() string   { return s.phone }
func (s *Store) Type() Type      { return s.storeType }
func (s *Store) IsActive() bool  { return s.active }

func (s *Store) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Store) setType(storeType Type) error {
	if err := storeType.Validate(); err != nil {
		return err
	}
	s.storeType = storeType
	return nil
}
