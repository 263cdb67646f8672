// Package user contains the application's view of an account managed by
// the external auth provider. The provider owns authentication; this
// service keeps a profile row per account for role assignment and store
// scoping.
package user

import (
	"errors"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a profile for one auth-provider account. The ID is the
// provider's subject UUID, not a local surrogate key.
type User struct {
	id       kernel.UUID
	email    string
	fullName string
	role     Role
	storeID  *int64
	active   bool

	guard guard.ConstructorGuard
}

// NewUser creates a new active User with validation.
func NewUser(id kernel.UUID, email, fullName string, role Role, storeID *int64) (*User, error) {
	u := &User{
		fullName: fullName,
		storeID:  storeID,
		active:   true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage.
func RestoreUser(id kernel.UUID, email, fullName string, role Role, storeID *int64, active bool) (*User, error) {
	u, err := NewUser(id, email, fullName, role, storeID)
	if err != nil {
		return nil, err
	}
	u.active = active
	return u, nil
}

// Validate ensures the User was created through one of its constructors.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID  { return u.id }
func (u *User) Email() string    { return u.email }
func (u *User) FullName() string { return u.fullName }
func (u *User) Role() Role       { return u.role }
func (u *User) StoreID() *int64  { return u.storeID }
func (u *User) IsActive() bool   { return u.active }

// ChangeRole assigns a new role, optionally rebinding the user to a store.
// Store binding is meaningful only for store-scoped roles but is kept for
// any role so an admin can pre-assign it.
func (u *User) ChangeRole(role Role, storeID *int64) error {
	if err := u.setRole(role); err != nil {
		return err
	}
	u.storeID = storeID
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
