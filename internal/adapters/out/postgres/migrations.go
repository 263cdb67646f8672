package postgres

import (
	"ckms/internal/adapters/out/postgres/batchrepo"
	"ckms/internal/adapters/out/postgres/catalogrepo"
	"ckms/internal/adapters/out/postgres/orderrepo"
	"ckms/internal/adapters/out/postgres/shipmentrepo"
	"ckms/internal/adapters/out/postgres/storerepo"
	"ckms/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every persisted
// aggregate. Safe to run on every startup; GORM only applies the diff.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ProductDTO{},
		&storerepo.StoreDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&batchrepo.BatchDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
	)
}
