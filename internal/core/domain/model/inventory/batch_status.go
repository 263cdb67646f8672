package inventory

import (
	"fmt"

	"ckms/internal/pkg/errs"
)

// BatchStatus represents the availability of an inventory batch.
type BatchStatus int

const (
	// BatchStatusUnknown represents an invalid or undefined status.
	BatchStatusUnknown BatchStatus = iota

	// BatchActive means the batch has stock available for shipments.
	BatchActive

	// BatchDepleted means the batch's current quantity reached zero.
	BatchDepleted

	// BatchExpired means the batch passed its expiry date. Expired
	// batches are excluded from consumption regardless of stock.
	BatchExpired
)

func getBatchStatusStrings() map[BatchStatus]string {
	return map[BatchStatus]string{
		BatchStatusUnknown: "unknown",
		BatchActive:        "active",
		BatchDepleted:      "depleted",
		BatchExpired:       "expired",
	}
}

func getValidBatchStatusStrings() map[BatchStatus]string {
	//nolint:exhaustive // BatchStatusUnknown is intentionally excluded as it's invalid
	return map[BatchStatus]string{
		BatchActive:   "active",
		BatchDepleted: "depleted",
		BatchExpired:  "expired",
	}
}

// BatchStatusFromString parses the persisted string representation of a
// batch status.
func BatchStatusFromString(s string) (BatchStatus, error) {
	for status, str := range getValidBatchStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return BatchStatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid batch status", s))
}

// Validate checks if the BatchStatus value is valid.
func (s BatchStatus) Validate() error {
	if _, ok := getValidBatchStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid batch status", s))
	}
	return nil
}

// String returns the lowercase name of the status. Returns "unknown" for
// invalid values.
func (s BatchStatus) String() string {
	if str, ok := getBatchStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
