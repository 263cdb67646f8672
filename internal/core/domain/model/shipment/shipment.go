package shipment

import (
	"errors"
	"time"

	"ckms/internal/pkg/errs"
	"ckms/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment represents a delivery from the central kitchen against one
// order. It is the aggregate root that manages the shipment lifecycle and
// the lines drawn from inventory batches.
//
// Shipment follows these invariants:
//   - Must have a business code and a parent order
//   - Status transitions follow the strict adjacency table
//   - Entering Shipping stamps shippedAt; entering Delivered stamps
//     deliveredAt; entering Cancelled clears both timestamps
//   - Items are mutable only while pending or preparing
//
// Restoring consumed batch stock on cancellation and cascading the parent
// order's status are coordinated by the application layer, which owns the
// transaction those effects must share.
type Shipment struct {
	id          int64
	code        string
	orderID     int64
	driverName  string
	driverPhone string
	notes       string
	status      Status
	shippedAt   *time.Time
	deliveredAt *time.Time
	items       []*Item

	guard guard.ConstructorGuard
}

// NewShipment creates a new Shipment in pending status with validation.
//
// Parameters:
//   - code: Business code for the shipment, e.g. "SHP-20250115-7KQ2M"
//   - orderID: The order this shipment fulfills
//   - driverName, driverPhone, notes: Logistics details (optional)
//   - items: Initial shipment lines (may be empty; lines can be added
//     while the shipment is pending or preparing)
func NewShipment(
	code string,
	orderID int64,
	driverName string,
	driverPhone string,
	notes string,
	items []*Item,
) (*Shipment, error) {
	s := &Shipment{
		driverName:  driverName,
		driverPhone: driverPhone,
		notes:       notes,
		status:      Pending,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCode(code),
		s.setOrderID(orderID),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent
// storage, including its status and timestamps.
func RestoreShipment(
	id int64,
	code string,
	orderID int64,
	driverName string,
	driverPhone string,
	notes string,
	status Status,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	items []*Item,
) (*Shipment, error) {
	s := &Shipment{
		driverName:  driverName,
		driverPhone: driverPhone,
		notes:       notes,
		shippedAt:   shippedAt,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCode(code),
		s.setOrderID(orderID),
		s.setItems(items),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	s.id = id
	return s, nil
}

// Validate ensures the Shipment was created through one of its constructors.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their database identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id != 0 && s.id == other.id
}

// ID returns the shipment's database identifier. Zero for unsaved shipments.
func (s *Shipment) ID() int64 {
	return s.id
}

// AssignID records the identifier generated by storage. It can be set
// only once, on an unsaved shipment.
func (s *Shipment) AssignID(id int64) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	s.id = id
	return nil
}

// Code returns the shipment's business code.
func (s *Shipment) Code() string {
	return s.code
}

// OrderID returns the order this shipment fulfills.
func (s *Shipment) OrderID() int64 {
	return s.orderID
}

// DriverName returns the assigned driver's name.
func (s *Shipment) DriverName() string {
	return s.driverName
}

// DriverPhone returns the assigned driver's phone number.
func (s *Shipment) DriverPhone() string {
	return s.driverPhone
}

// Notes returns the free-form note attached to the shipment.
func (s *Shipment) Notes() string {
	return s.notes
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// ShippedAt returns the time the shipment entered Shipping, or nil.
func (s *Shipment) ShippedAt() *time.Time {
	return s.shippedAt
}

// DeliveredAt returns the time the shipment entered Delivered, or nil.
func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// Items returns the shipment lines.
func (s *Shipment) Items() []*Item {
	return s.items
}

// ChangeStatus performs a transition following the strict adjacency table
// and applies the timestamp side effects:
//
//   - entering Shipping stamps shippedAt with now
//   - entering Delivered stamps deliveredAt with now
//   - entering Cancelled clears both timestamps
//
// An illegal transition returns an error and changes nothing. Restocking
// consumed batches and cascading the parent order happen in the
// application layer, inside the same transaction as this change.
func (s *Shipment) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	switch newStatus {
	case Shipping:
		shippedAt := now
		s.shippedAt = &shippedAt
	case Delivered:
		deliveredAt := now
		s.deliveredAt = &deliveredAt
	case Cancelled:
		s.shippedAt = nil
		s.deliveredAt = nil
	default:
	}

	return nil
}

// UpdateDetails changes driver name, driver phone, and notes. Rejected on
// terminal shipments.
func (s *Shipment) UpdateDetails(driverName, driverPhone, notes string) error {
	if s.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New("cannot edit a delivered or cancelled shipment"))
	}
	s.driverName = driverName
	s.driverPhone = driverPhone
	s.notes = notes
	return nil
}

// AddItem appends a shipment line. Allowed only while items are mutable
// (pending or preparing). The over-shipment and batch-stock guards run in
// the application layer under row locks before the line is persisted.
func (s *Shipment) AddItem(item *Item) error {
	if err := s.validateItemsMutable(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	s.items = append(s.items, item)
	return nil
}

// FindItem returns the shipment line with the given identifier, or an
// ObjectNotFoundError.
func (s *Shipment) FindItem(itemID int64) (*Item, error) {
	for _, item := range s.items {
		if item.ID() == itemID {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("shipmentItemId", itemID)
}

// ValidateItemsMutable returns an error when shipment lines can no longer
// be added or changed.
func (s *Shipment) ValidateItemsMutable() error {
	return s.validateItemsMutable()
}

func (s *Shipment) validateItemsMutable() error {
	if !s.status.AllowsItemEdits() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New("shipment items can only be changed while pending or preparing"))
	}
	return nil
}

func (s *Shipment) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	s.code = code
	return nil
}

func (s *Shipment) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = items
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
