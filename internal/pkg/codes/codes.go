// Package codes generates human-readable business codes for orders,
// shipments, and inventory batches. Codes have the shape
// PREFIX-YYYYMMDD-XXXXX, where the suffix is a random uppercase
// alphanumeric string. Codes are not guaranteed globally unique by
// construction; the database enforces uniqueness with a unique index,
// and a collision surfaces as a conflict error for the client to retry.
package codes

import (
	"crypto/rand"
	"fmt"
	"time"

	"ckms/internal/pkg/errs"
)

// Prefixes for the code families used across the application.
const (
	OrderPrefix    = "ORD"
	ShipmentPrefix = "SHP"
	BatchPrefix    = "BAT"
)

const (
	suffixLen      = 5
	suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generate produces a code like "ORD-20250115-7KQ2M" for the given prefix,
// stamped with the current date in UTC.
func Generate(prefix string) (string, error) {
	return GenerateAt(prefix, time.Now())
}

// GenerateAt produces a code stamped with the given time. The time is
// converted to UTC before formatting so codes are stable across server
// timezones.
func GenerateAt(prefix string, at time.Time) (string, error) {
	if prefix == "" {
		return "", errs.NewValueIsRequiredError("prefix")
	}

	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate code suffix: %w", err)
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}

	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format("20060102"), buf), nil
}
