package order

import (
	"errors"
	"time"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a franchise store's order against the central kitchen.
// It is the aggregate root that manages the order lifecycle from submission
// through fulfillment.
//
// Order follows these invariants:
//   - Must have a business code and a valid store
//   - Must contain at least one line
//   - Unit-price snapshots on lines are immutable after creation
//   - Content (lines, delivery date, notes) is editable only while pending
//   - Total amount always equals the sum of line totals
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id           int64
	code         string
	storeID      int64
	createdBy    kernel.UUID
	deliveryDate *time.Time
	notes        string
	totalAmount  float64
	status       Status
	fulfillment  Fulfillment
	items        []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in pending status with validation. This is
// the only way to create a fresh order, ensuring all business invariants
// are maintained.
//
// Parameters:
//   - code: Business code for the order, e.g. "ORD-20250115-7KQ2M"
//   - storeID: The store placing the order
//   - createdBy: Auth-provider identity of the submitting user
//   - deliveryDate: Requested delivery date (optional)
//   - notes: Free-form note (optional)
//   - items: Order lines with price snapshots already taken
//
// The order starts with status Pending and fulfillment Processing; the
// total amount is computed from the lines.
func NewOrder(
	code string,
	storeID int64,
	createdBy kernel.UUID,
	deliveryDate *time.Time,
	notes string,
	items []*Item,
) (*Order, error) {
	o := &Order{
		deliveryDate: deliveryDate,
		notes:        notes,
		status:       Pending,
		fulfillment:  FulfillmentProcessing,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCode(code),
		o.setStoreID(storeID),
		o.setCreatedBy(createdBy),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts orders as pending, this constructor
// restores the persisted status and fulfillment. The restored order behaves
// identically to one created through normal domain operations.
func RestoreOrder(
	id int64,
	code string,
	storeID int64,
	createdBy kernel.UUID,
	deliveryDate *time.Time,
	notes string,
	status Status,
	fulfillment Fulfillment,
	items []*Item,
) (*Order, error) {
	o := &Order{
		deliveryDate: deliveryDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCode(code),
		o.setStoreID(storeID),
		o.setCreatedBy(createdBy),
		o.setItems(items),
		o.setStatus(status),
		o.setFulfillment(fulfillment),
	); err != nil {
		return nil, err
	}

	o.id = id
	return o, nil
}

// Validate ensures the Order was created through one of its constructors.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their database identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's database identifier. Zero for unsaved orders.
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the identifier generated by storage. It can be set
// only once, on an unsaved order.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// Code returns the order's business code.
func (o *Order) Code() string {
	return o.code
}

// StoreID returns the store that placed the order.
func (o *Order) StoreID() int64 {
	return o.storeID
}

// CreatedBy returns the identity of the user who submitted the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// DeliveryDate returns the requested delivery date, or nil.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Notes returns the free-form note attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// TotalAmount returns the sum of line totals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Fulfillment returns the derived fulfillment value.
func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// ChangeStatus sets the lifecycle status to any valid value. The status is
// advisory; membership in the enum is the only check performed here. Role
// gating happens at the HTTP layer and content edits are guarded
// separately by UpdateDetails and ReplaceItems.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

// MarkShipping moves the order to Shipping. Called when a shipment of the
// order starts moving.
func (o *Order) MarkShipping() {
	o.status = Shipping
}

// MarkDelivered moves the order to Delivered. Called when a shipment of
// the order is delivered.
func (o *Order) MarkDelivered() {
	o.status = Delivered
}

// SetFulfillment records a freshly derived fulfillment value.
func (o *Order) SetFulfillment(fulfillment Fulfillment) error {
	return o.setFulfillment(fulfillment)
}

// UpdateDetails changes the delivery date and notes. Allowed only while
// the order is pending.
func (o *Order) UpdateDetails(deliveryDate *time.Time, notes string) error {
	if !o.status.AllowsEditing() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New("order content can only be edited while pending"))
	}
	o.deliveryDate = deliveryDate
	o.notes = notes
	return nil
}

// ReplaceItems swaps the order lines for a new set and recomputes the
// total. Allowed only while the order is pending. The new lines carry
// fresh price snapshots taken by the caller.
func (o *Order) ReplaceItems(items []*Item) error {
	if !o.status.AllowsEditing() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New("order content can only be edited while pending"))
	}
	return o.setItems(items)
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsRequiredError("storeId")
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.LineTotal()
	}

	o.items = items
	o.totalAmount = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setFulfillment(fulfillment Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	o.fulfillment = fulfillment
	return nil
}
