package commands

import (
	"errors"
	"time"

	"ckms/internal/pkg/guard"
)

var ErrExpireBatchesCommandIsNotConstructed = errors.New(
	"ExpireBatchesCommand must be created via NewExpireBatchesCommand constructor",
)

// ExpireBatchesCommand represents a request to mark every active batch
// whose expiry date has passed as expired. Run periodically by the
// batch expiry job.
type ExpireBatchesCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireBatchesCommand creates a command to expire overdue batches as
// of the given time.
func NewExpireBatchesCommand(now time.Time) (ExpireBatchesCommand, error) {
	if now.IsZero() {
		return ExpireBatchesCommand{}, errors.New("now is required")
	}

	return ExpireBatchesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireBatchesCommand) Validate() error {
	return c.guard.Validate(ErrExpireBatchesCommandIsNotConstructed)
}

// Now returns the reference time batches are expired against.
func (c ExpireBatchesCommand) Now() time.Time {
	return c.now
}
