// Package catalogrepo provides data transfer objects and mapping functions
// for catalog persistence: products and their categories.
package catalogrepo

import (
	"time"

	"ckms/internal/core/domain/model/catalog"
)

// ProductDTO represents the database structure for persisting catalog
// products. The SKU carries a unique index; collisions on insert surface
// as Conflict errors.
type ProductDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SKU         string `gorm:"size:64;uniqueIndex"`
	Name        string `gorm:"index"`
	Description string
	Unit        string `gorm:"size:16"`
	Price       float64
	ProductType string `gorm:"size:16;index"`
	CategoryID  *int64 `gorm:"index"`
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// CategoryDTO represents one category row.
type CategoryDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:128"`
	Description string
	CreatedAt   time.Time
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// productFromDomain converts a product aggregate to its database
// representation.
func productFromDomain(aggregate *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		SKU:         aggregate.SKU(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Unit:        aggregate.Unit(),
		Price:       aggregate.Price(),
		ProductType: aggregate.Type().String(),
		CategoryID:  aggregate.CategoryID(),
		Active:      aggregate.IsActive(),
	}
}

// productToDomain converts a database DTO to a product aggregate.
func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	productType, err := catalog.ProductTypeFromString(dto.ProductType)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(
		dto.ID,
		dto.SKU,
		dto.Name,
		dto.Description,
		dto.Unit,
		dto.Price,
		productType,
		dto.CategoryID,
		dto.Active,
	)
}

// categoryFromDomain converts a category to its database representation.
func categoryFromDomain(aggregate *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
	}
}

// categoryToDomain converts a database DTO to a category.
func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(dto.ID, dto.Name, dto.Description)
}
