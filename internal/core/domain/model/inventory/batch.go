package inventory

import (
	"errors"
	"fmt"
	"time"

	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrBatchIsNotConstructed is returned when a Batch instance was not
// created through NewBatch or RestoreBatch.
var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch")

// Batch represents a production batch of one product: a quantity made on a
// given date with a given shelf life. Shipment lines consume stock from
// batches, and cancelling a shipment restores exactly what it consumed.
//
// Batch follows these invariants:
//   - currentQuantity never goes negative
//   - currentQuantity never exceeds initialQuantity
//   - a batch at zero stock is depleted; restoring stock reactivates it
//   - expired batches cannot be consumed from
type Batch struct {
	id              int64
	code            string
	productID       int64
	initialQuantity int
	currentQuantity int
	manufactureDate time.Time
	expiryDate      *time.Time
	status          BatchStatus

	guard guard.ConstructorGuard
}

// NewBatch creates a new active Batch with full stock.
//
// Parameters:
//   - code: Business code for the batch, e.g. "BAT-20250115-7KQ2M"
//   - productID: The product this batch holds
//   - quantity: Quantity produced; becomes both initial and current stock
//   - manufactureDate: Production date
//   - expiryDate: Shelf-life limit (optional; nil means no expiry)
func NewBatch(
	code string,
	productID int64,
	quantity int,
	manufactureDate time.Time,
	expiryDate *time.Time,
) (*Batch, error) {
	b := &Batch{
		manufactureDate: manufactureDate,
		expiryDate:      expiryDate,
		status:          BatchActive,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setCode(code),
		b.setProductID(productID),
		b.setQuantities(quantity, quantity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBatch reconstructs a Batch aggregate from persistent storage.
func RestoreBatch(
	id int64,
	code string,
	productID int64,
	initialQuantity int,
	currentQuantity int,
	manufactureDate time.Time,
	expiryDate *time.Time,
	status BatchStatus,
) (*Batch, error) {
	b := &Batch{
		manufactureDate: manufactureDate,
		expiryDate:      expiryDate,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setCode(code),
		b.setProductID(productID),
		b.setQuantities(initialQuantity, currentQuantity),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	b.id = id
	return b, nil
}

// Validate ensures the Batch was created through one of its constructors.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

// ID returns the batch's database identifier. Zero for unsaved batches.
func (b *Batch) ID() int64 {
	return b.id
}

// AssignID records the identifier generated by storage. It can be set
// only once, on an unsaved batch.
func (b *Batch) AssignID(id int64) error {
	if b.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	b.id = id
	return nil
}

// Code returns the batch's business code.
func (b *Batch) Code() string {
	return b.code
}

// ProductID returns the product this batch holds.
func (b *Batch) ProductID() int64 {
	return b.productID
}

// InitialQuantity returns the quantity the batch was produced with.
func (b *Batch) InitialQuantity() int {
	return b.initialQuantity
}

// CurrentQuantity returns the remaining stock.
func (b *Batch) CurrentQuantity() int {
	return b.currentQuantity
}

// ManufactureDate returns the production date.
func (b *Batch) ManufactureDate() time.Time {
	return b.manufactureDate
}

// ExpiryDate returns the shelf-life limit, or nil when the batch does not
// expire.
func (b *Batch) ExpiryDate() *time.Time {
	return b.expiryDate
}

// Status returns the batch's availability status.
func (b *Batch) Status() BatchStatus {
	return b.status
}

// IsExpired reports whether the batch has passed its expiry date at the
// given time. Batches without an expiry date never expire.
func (b *Batch) IsExpired(now time.Time) bool {
	return b.expiryDate != nil && now.After(*b.expiryDate)
}

// Consume removes stock for a shipment line.
//
// Returns an error when the batch is expired, when quantity is not
// positive, or when the batch holds less than the requested quantity.
// Reaching zero stock marks the batch depleted.
func (b *Batch) Consume(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if b.status == BatchExpired {
		return errs.NewValueIsInvalidErrorWithCause("batch is invalid",
			fmt.Errorf("batch %s is expired", b.code))
	}
	if quantity > b.currentQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, b.currentQuantity)
	}

	b.currentQuantity -= quantity
	if b.currentQuantity == 0 {
		b.status = BatchDepleted
	}
	return nil
}

// Restock returns previously consumed stock, used when a shipment is
// cancelled or a shipment line's quantity is reduced.
//
// Returns an error when quantity is not positive or when restocking would
// push current stock above the initial quantity. Restoring stock to a
// depleted batch reactivates it; expired batches stay expired.
func (b *Batch) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if b.currentQuantity+quantity > b.initialQuantity {
		return errs.NewValueIsOutOfRangeError("quantity",
			b.currentQuantity+quantity, 0, b.initialQuantity)
	}

	b.currentQuantity += quantity
	if b.status == BatchDepleted {
		b.status = BatchActive
	}
	return nil
}

// MarkExpired moves the batch to the expired status. Used by the daily
// expiry sweep for batches past their expiry date.
func (b *Batch) MarkExpired() {
	b.status = BatchExpired
}

func (b *Batch) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	b.code = code
	return nil
}

func (b *Batch) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsRequiredError("productId")
	}
	b.productID = productID
	return nil
}

func (b *Batch) setQuantities(initial, current int) error {
	if initial <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("initialQuantity is invalid",
			fmt.Errorf("%d is not greater than 0", initial))
	}
	if current < 0 || current > initial {
		return errs.NewValueIsOutOfRangeError("currentQuantity", current, 0, initial)
	}
	b.initialQuantity = initial
	b.currentQuantity = current
	return nil
}

func (b *Batch) setStatus(status BatchStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}
