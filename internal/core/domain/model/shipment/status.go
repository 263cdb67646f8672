package shipment

import (
	"fmt"

	"ckms/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment. Unlike the advisory
// order status, shipment transitions are strict: only the moves in the
// adjacency table below are legal, and an illegal request is rejected with
// no state change.
//
// State transitions:
//
//	Pending ──> Preparing ──> Shipping ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are final states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipment is created.
	Pending

	// Preparing indicates the kitchen is packing the shipment.
	Preparing

	// Shipping indicates the shipment left the kitchen.
	Shipping

	// Delivered indicates the shipment arrived at the store.
	Delivered

	// Cancelled indicates the shipment was withdrawn before leaving.
	// Consumed batch stock is restored on entry.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Shipping:  "shipping",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Shipping:  "shipping",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the adjacency table of legal transitions.
// Statuses missing from the table accept no transitions.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Delivered and Cancelled are final and intentionally absent
	return map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Shipping, Cancelled},
		Shipping:  {Delivered},
	}
}

// StatusFromString parses the persisted string representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the lowercase name of the status as used on the wire and
// in the database. Returns "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the adjacency table allows moving from
// this status to the target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo performs a transition following the adjacency table.
//
// Returns:
//   - (target, nil) when the transition is legal
//   - (0, error) when the target is invalid or the move is not allowed
//
// This method is used by Shipment.ChangeStatus to enforce the machine.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("cannot transition shipment from %s to %s", s, target))
	}
	return target, nil
}

// IsTerminal reports whether the status ends the shipment lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowsItemEdits reports whether shipment items may still be added or
// changed. Items freeze once the shipment starts moving.
func (s Status) AllowsItemEdits() bool {
	return s == Pending || s == Preparing
}
