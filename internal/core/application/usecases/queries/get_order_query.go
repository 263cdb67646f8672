package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetOrderQuery retrieves one order with its lines. A non-nil storeScope
// restricts access to orders of that store; the HTTP layer sets it for
// store-scoped users.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID    int64
	storeScope *int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID int64, storeScope *int64) (GetOrderQuery, error) {
	q := GetOrderQuery{
		storeScope: storeScope,
		guard:      guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() int64 { return q.orderID }

// StoreScope returns the store the requester is limited to, or nil.
func (q GetOrderQuery) StoreScope() *int64 { return q.storeScope }

func (q *GetOrderQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	q.orderID = orderID
	return nil
}
