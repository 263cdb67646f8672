package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var ErrListStoresQueryIsNotConstructed = errors.New(
	"ListStoresQuery must be created via NewListStoresQuery constructor",
)

// ListStoresQuery retrieves all locations in the franchise network.
type ListStoresQuery struct {
	guard guard.ConstructorGuard
}

// NewListStoresQuery creates a query for all stores.
func NewListStoresQuery() ListStoresQuery {
	return ListStoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

// StoreView is the read model for one store.
type StoreView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Type    string `json:"storeType"`
	Active  bool   `json:"active"`
}
