package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCategoriesQueryHandler retrieves all catalog categories.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the query and returns all categories sorted by name.
func (h ListCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListCategoriesQuery,
) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]CategoryView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.description,
			COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name, c.description
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view CategoryView
		if err = rows.Scan(
			&view.ID,
			&view.Name,
			&view.Description,
			&view.ProductCount,
		); err != nil {
			return nil, err
		}
		categories = append(categories, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
