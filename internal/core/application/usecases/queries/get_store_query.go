package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var (
	ErrGetStoreQueryIsNotConstructed = errors.New(
		"GetStoreQuery must be created via NewGetStoreQuery constructor",
	)
	ErrStoreIDIsRequired = errors.New("store id is required")
)

// GetStoreQuery retrieves one store.
type GetStoreQuery struct { //nolint:recvcheck //using for validation
	storeID int64

	guard guard.ConstructorGuard
}

// NewGetStoreQuery creates a query for one store.
func NewGetStoreQuery(storeID int64) (GetStoreQuery, error) {
	q := GetStoreQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setStoreID(storeID); err != nil {
		return GetStoreQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

// StoreID returns the requested store.
func (q GetStoreQuery) StoreID() int64 { return q.storeID }

func (q *GetStoreQuery) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return ErrStoreIDIsRequired
	}
	q.storeID = storeID
	return nil
}
