package user

import (
	"fmt"

	"ckms/internal/pkg/errs"
)

// Role is the permission level carried in the auth provider's
// app_metadata. Role gating happens at the HTTP layer; the domain only
// validates membership.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin has every permission, including user and catalog admin.
	RoleAdmin

	// RoleManager runs day-to-day operations across all stores.
	RoleManager

	// RoleCKStaff works in the central kitchen on order processing.
	RoleCKStaff

	// RoleStoreStaff belongs to one franchise store and only sees that
	// store's orders.
	RoleStoreStaff

	// RoleCoordinator handles logistics: shipments and order statuses.
	RoleCoordinator
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "unknown",
		RoleAdmin:       "admin",
		RoleManager:     "manager",
		RoleCKStaff:     "ck_staff",
		RoleStoreStaff:  "store_staff",
		RoleCoordinator: "coordinator",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:       "admin",
		RoleManager:     "manager",
		RoleCKStaff:     "ck_staff",
		RoleStoreStaff:  "store_staff",
		RoleCoordinator: "coordinator",
	}
}

// RoleFromString parses the string representation of a role as carried in
// tokens and the database.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role. Returns "unknown" for
// invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsStoreScoped reports whether the role only sees its own store's data.
func (r Role) IsStoreScoped() bool {
	return r == RoleStoreStaff
}
