package queries

import (
	"errors"
	"time"

	"ckms/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves a page of non-cancelled shipments, newest
// first.
type ListShipmentsQuery struct {
	page  int
	limit int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query for a page of shipments.
func NewListShipmentsQuery(page, limit int) ListShipmentsQuery {
	page, limit = normalizePage(page, limit)
	return ListShipmentsQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Page returns the requested page number, starting at 1.
func (q ListShipmentsQuery) Page() int { return q.page }

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int { return q.limit }

// ShipmentItemView is one shipment line in a read model, with the product
// it fulfills and the batch it was drawn from resolved to names.
type ShipmentItemView struct {
	ID          int64  `json:"id"`
	OrderItemID int64  `json:"orderItemId"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	BatchID     *int64 `json:"batchId,omitempty"`
	BatchCode   string `json:"batchCode,omitempty"`
	Quantity    int    `json:"quantity"`
	Note        string `json:"note,omitempty"`
}

// ShipmentView is the read model for one shipment.
type ShipmentView struct {
	ID          int64              `json:"id"`
	Code        string             `json:"code"`
	OrderID     int64              `json:"orderId"`
	OrderCode   string             `json:"orderCode"`
	StoreID     int64              `json:"storeId"`
	StoreName   string             `json:"storeName"`
	DriverName  string             `json:"driverName,omitempty"`
	DriverPhone string             `json:"driverPhone,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Status      string             `json:"status"`
	ShippedAt   *time.Time         `json:"shippedAt,omitempty"`
	DeliveredAt *time.Time         `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	Items       []ShipmentItemView `json:"items,omitempty"`
}

// ListShipmentsQueryResponse is one page of shipments with pagination
// metadata. Listing rows do not carry items; use GetShipment or
// ListShipmentItems for line detail.
type ListShipmentsQueryResponse struct {
	Shipments []ShipmentView
	Meta      PageMeta
}
