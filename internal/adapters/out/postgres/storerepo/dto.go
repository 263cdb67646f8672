// Package storerepo provides data transfer objects and mapping functions
// for store persistence.
package storerepo

import (
	"time"

	"ckms/internal/core/domain/model/store"
)

// StoreDTO represents the database structure for persisting stores.
type StoreDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:128"`
	Address   string
	Phone     string `gorm:"size:32"`
	StoreType string `gorm:"size:24;index"`
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store aggregate to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Phone:     aggregate.Phone(),
		StoreType: aggregate.Type().String(),
		Active:    aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a store aggregate.
func toDomain(dto StoreDTO) (*store.Store, error) {
	storeType, err := store.TypeFromString(dto.StoreType)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(dto.ID, dto.Name, dto.Address, dto.Phone, storeType, dto.Active)
}
