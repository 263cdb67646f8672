package order

import (
	"fmt"

	"ckms/internal/pkg/errs"
)

// Status represents the lifecycle state of a franchise order.
//
// The status is advisory: coordinators move orders through the workflow
// explicitly, and the application validates only that the value is a
// member of the lifecycle. Two statuses are still set by the system
// rather than by hand: Shipping when a shipment of the order starts
// moving, and Delivered when a shipment of the order is delivered.
//
// Lifecycle:
//
//	Pending -> Approved -> Processing -> Processed -> Shipping -> Delivered
//	    \________________________ Cancelled _________________________/
//
// Status is a value object that validates membership and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a store submits an order.
	// Items and header fields are editable only in this status.
	Pending

	// Approved indicates a coordinator accepted the order.
	Approved

	// Processing indicates the central kitchen started working the order.
	// Shipments can be created only for orders in this status.
	Processing

	// Processed indicates the kitchen finished preparing the order.
	Processed

	// Shipping indicates at least one shipment left the kitchen.
	Shipping

	// Delivered indicates every non-cancelled shipment arrived.
	Delivered

	// Cancelled indicates the order was withdrawn. No shipments may be
	// created against a cancelled order.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Approved:   "approved",
		Processing: "processing",
		Processed:  "processed",
		Shipping:   "shipping",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Approved:   "approved",
		Processing: "processing",
		Processed:  "processed",
		Shipping:   "shipping",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted string representation of a status.
// Returns an error for any string that does not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is a member of the order lifecycle.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lowercase name of the status as used on the wire and
// in the database. Returns "unknown" for invalid values.
//
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the order lifecycle.
// Delivered and Cancelled orders accept no further status changes.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowsEditing reports whether order items and header fields may still be
// modified. Only pending orders are editable.
func (s Status) AllowsEditing() bool {
	return s == Pending
}

// AllowsShipmentCreation reports whether new shipments may be created for
// an order in this status. Shipments are created only while the kitchen is
// actively processing the order.
func (s Status) AllowsShipmentCreation() bool {
	return s == Processing
}
