package queries

import (
	"errors"
	"time"

	"ckms/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of orders, newest first. An optional
// store filter narrows the listing to one store; store-scoped users are
// forced onto their own store by the HTTP layer.
type ListOrdersQuery struct {
	page    int
	limit   int
	storeID *int64

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders. Pass a nil
// storeID to list across all stores.
func NewListOrdersQuery(page, limit int, storeID *int64) ListOrdersQuery {
	page, limit = normalizePage(page, limit)
	return ListOrdersQuery{
		page:    page,
		limit:   limit,
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the requested page number, starting at 1.
func (q ListOrdersQuery) Page() int { return q.page }

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int { return q.limit }

// StoreID returns the store filter, or nil.
func (q ListOrdersQuery) StoreID() *int64 { return q.storeID }

// OrderItemView is one order line in a read model.
type OrderItemView struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
	Notes       string  `json:"notes,omitempty"`
}

// OrderView is the read model for one order, including its lines and the
// names of the store and the submitting user. Identifiers issued by the
// auth provider are carried as strings, matching the write-side
// responses.
type OrderView struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	StoreID       int64           `json:"storeId"`
	StoreName     string          `json:"storeName"`
	CreatedBy     string          `json:"createdBy"`
	CreatedByName string          `json:"createdByName,omitempty"`
	DeliveryDate  *time.Time      `json:"deliveryDate,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	TotalAmount   float64         `json:"totalAmount"`
	Status        string          `json:"status"`
	Fulfillment   string          `json:"fulfillment"`
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []OrderItemView `json:"items"`
}

// ListOrdersQueryResponse is one page of orders with pagination metadata.
type ListOrdersQueryResponse struct {
	Orders []OrderView
	Meta   PageMeta
}
