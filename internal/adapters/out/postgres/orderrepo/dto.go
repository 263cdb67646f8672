// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The business code carries a unique index; collisions on
// insert surface as Conflict errors.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Code         string    `gorm:"size:32;uniqueIndex"`
	StoreID      int64     `gorm:"index"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDate *time.Time
	Notes        string
	TotalAmount  float64
	Status       string `gorm:"size:16;index"`
	Fulfillment  string `gorm:"size:24"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line row.
type OrderItemDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	ProductID int64 `gorm:"index"`
	Quantity  int
	UnitPrice float64
	Notes     string
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		Code:         aggregate.Code(),
		StoreID:      aggregate.StoreID(),
		CreatedBy:    aggregate.CreatedBy().Bytes(),
		DeliveryDate: aggregate.DeliveryDate(),
		Notes:        aggregate.Notes(),
		TotalAmount:  aggregate.TotalAmount(),
		Status:       aggregate.Status().String(),
		Fulfillment:  aggregate.Fulfillment().String(),
		Items:        items,
	}
}

func itemFromDomain(orderID int64, item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:        item.ID(),
		OrderID:   orderID,
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
		UnitPrice: item.UnitPrice(),
		Notes:     item.Notes(),
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing
// the persisted status and fulfillment through RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	createdBy, err := kernel.UUIDFromString(dto.CreatedBy.String())
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	fulfillment, err := order.FulfillmentFromString(dto.Fulfillment)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Code,
		dto.StoreID,
		createdBy,
		dto.DeliveryDate,
		dto.Notes,
		status,
		fulfillment,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	return order.RestoreItem(dto.ID, dto.ProductID, dto.Quantity, dto.UnitPrice, dto.Notes)
}
