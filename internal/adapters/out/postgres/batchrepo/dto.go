// Package batchrepo provides data transfer objects and mapping functions
// for inventory batch persistence.
package batchrepo

import (
	"time"

	"ckms/internal/core/domain/model/inventory"
)

// BatchDTO represents the database structure for persisting batches.
type BatchDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Code            string `gorm:"size:32;uniqueIndex"`
	ProductID       int64  `gorm:"index"`
	InitialQuantity int
	CurrentQuantity int
	ManufactureDate time.Time
	ExpiryDate      *time.Time `gorm:"index"`
	Status          string     `gorm:"size:16;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

// fromDomain converts a batch aggregate to its database representation.
func fromDomain(aggregate *inventory.Batch) BatchDTO {
	return BatchDTO{
		ID:              aggregate.ID(),
		Code:            aggregate.Code(),
		ProductID:       aggregate.ProductID(),
		InitialQuantity: aggregate.InitialQuantity(),
		CurrentQuantity: aggregate.CurrentQuantity(),
		ManufactureDate: aggregate.ManufactureDate(),
		ExpiryDate:      aggregate.ExpiryDate(),
		Status:          aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a batch aggregate.
func toDomain(dto BatchDTO) (*inventory.Batch, error) {
	status, err := inventory.BatchStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreBatch(
		dto.ID,
		dto.Code,
		dto.ProductID,
		dto.InitialQuantity,
		dto.CurrentQuantity,
		dto.ManufactureDate,
		dto.ExpiryDate,
		status,
	)
}
