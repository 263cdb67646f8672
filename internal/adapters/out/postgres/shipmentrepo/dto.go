// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence, plus the shipped-quantity aggregations the
// over-shipment guard and fulfillment reconciliation rely on.
package shipmentrepo

import (
	"time"

	"ckms/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates.
type ShipmentDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Code        string `gorm:"size:32;uniqueIndex"`
	OrderID     int64  `gorm:"index"`
	DriverName  string
	DriverPhone string
	Notes       string
	Status      string `gorm:"size:16;index"`
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []ShipmentItemDTO `gorm:"foreignKey:ShipmentID"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentItemDTO represents one shipment line row. BatchID is nil for
// lines shipped without batch tracking.
type ShipmentItemDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ShipmentID  int64  `gorm:"index"`
	OrderItemID int64  `gorm:"index"`
	BatchID     *int64 `gorm:"index"`
	Quantity    int
	Note        string
}

// TableName specifies the database table name for shipment line entities.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	items := make([]ShipmentItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return ShipmentDTO{
		ID:          aggregate.ID(),
		Code:        aggregate.Code(),
		OrderID:     aggregate.OrderID(),
		DriverName:  aggregate.DriverName(),
		DriverPhone: aggregate.DriverPhone(),
		Notes:       aggregate.Notes(),
		Status:      aggregate.Status().String(),
		ShippedAt:   aggregate.ShippedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Items:       items,
	}
}

func itemFromDomain(shipmentID int64, item *shipment.Item) ShipmentItemDTO {
	return ShipmentItemDTO{
		ID:          item.ID(),
		ShipmentID:  shipmentID,
		OrderItemID: item.OrderItemID(),
		BatchID:     item.BatchID(),
		Quantity:    item.Quantity(),
		Note:        item.Note(),
	}
}

// toDomain converts a database DTO to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return shipment.RestoreShipment(
		dto.ID,
		dto.Code,
		dto.OrderID,
		dto.DriverName,
		dto.DriverPhone,
		dto.Notes,
		status,
		dto.ShippedAt,
		dto.DeliveredAt,
		items,
	)
}

func itemToDomain(dto ShipmentItemDTO) (*shipment.Item, error) {
	return shipment.RestoreItem(dto.ID, dto.OrderItemID, dto.BatchID, dto.Quantity, dto.Note)
}
