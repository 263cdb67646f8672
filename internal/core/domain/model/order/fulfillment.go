package order

import (
	"fmt"

	"ckms/internal/pkg/errs"
)

// Fulfillment represents how much of an order has been shipped. It is
// derived from the order's shipment items rather than set by users, and is
// stored alongside the advisory Status so the two never overwrite each
// other.
type Fulfillment int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment value.
	FulfillmentUnknown Fulfillment = iota

	// FulfillmentProcessing means no quantity has shipped yet.
	FulfillmentProcessing

	// FulfillmentPartial means some but not all ordered quantity has shipped.
	FulfillmentPartial

	// FulfillmentFulfilled means every ordered quantity has fully shipped.
	FulfillmentFulfilled
)

func getFulfillmentStrings() map[Fulfillment]string {
	return map[Fulfillment]string{
		FulfillmentUnknown:    "unknown",
		FulfillmentProcessing: "processing",
		FulfillmentPartial:    "partially_fulfilled",
		FulfillmentFulfilled:  "fulfilled",
	}
}

func getValidFulfillmentStrings() map[Fulfillment]string {
	//nolint:exhaustive // FulfillmentUnknown is intentionally excluded as it's invalid
	return map[Fulfillment]string{
		FulfillmentProcessing: "processing",
		FulfillmentPartial:    "partially_fulfilled",
		FulfillmentFulfilled:  "fulfilled",
	}
}

// FulfillmentFromString parses the persisted string representation of a
// fulfillment value.
func FulfillmentFromString(s string) (Fulfillment, error) {
	for f, str := range getValidFulfillmentStrings() {
		if str == s {
			return f, nil
		}
	}
	return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause("fulfillment is invalid",
		fmt.Errorf("%q is not a valid fulfillment value", s))
}

// Validate checks if the Fulfillment value is valid.
func (f Fulfillment) Validate() error {
	if _, ok := getValidFulfillmentStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment is invalid",
			fmt.Errorf("%d is not a valid fulfillment value", f))
	}
	return nil
}

// String returns the lowercase name of the fulfillment value as used on
// the wire and in the database. Returns "unknown" for invalid values.
func (f Fulfillment) String() string {
	if str, ok := getFulfillmentStrings()[f]; ok {
		return str
	}
	return "unknown"
}
