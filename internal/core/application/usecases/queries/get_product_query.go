package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrProductIDIsRequired = errors.New("product id is required")
)

// GetProductQuery retrieves one catalog product.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product.
func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	q := GetProductQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested product.
func (q GetProductQuery) ProductID() int64 { return q.productID }

func (q *GetProductQuery) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsRequired
	}
	q.productID = productID
	return nil
}
