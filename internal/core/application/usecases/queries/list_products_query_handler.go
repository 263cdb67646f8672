package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListProductsQueryHandler retrieves pages of catalog products.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for product listings.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query and returns one page of products sorted by
// name.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	where := "WHERE 1=1"
	args := []any{}
	if query.CategoryID() != nil {
		where += " AND p.category_id = ?"
		args = append(args, *query.CategoryID())
	}
	if query.ProductType() != nil {
		where += " AND p.product_type = ?"
		args = append(args, *query.ProductType())
	}
	if query.Active() != nil {
		where += " AND p.active = ?"
		args = append(args, *query.Active())
	}
	if query.Search() != "" {
		where += " AND (p.name ILIKE ? OR p.sku ILIKE ?)"
		term := "%" + query.Search() + "%"
		args = append(args, term, term)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM products p "+where, args...).
		Scan(&total).Error; err != nil {
		return ListProductsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.sku,
			p.name,
			p.description,
			p.unit,
			p.price,
			p.product_type,
			p.category_id,
			c.name,
			p.active
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		`+where+`
		ORDER BY p.name, p.id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return ListProductsQueryResponse{}, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		view, scanErr := scanProductView(rows)
		if scanErr != nil {
			return ListProductsQueryResponse{}, scanErr
		}
		products = append(products, view)
	}
	if err = rows.Err(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	return ListProductsQueryResponse{
		Products: products,
		Meta:     newPageMeta(total, query.Page(), query.Limit()),
	}, nil
}

// scanProductView reads one row of the product projection. The column
// order must match the SELECT in the handlers that share it.
func scanProductView(rows *sql.Rows) (ProductView, error) {
	var view ProductView
	var categoryID sql.NullInt64
	var categoryName sql.NullString

	if err := rows.Scan(
		&view.ID,
		&view.SKU,
		&view.Name,
		&view.Description,
		&view.Unit,
		&view.Price,
		&view.Type,
		&categoryID,
		&categoryName,
		&view.Active,
	); err != nil {
		return ProductView{}, err
	}

	if categoryID.Valid {
		view.CategoryID = &categoryID.Int64
	}
	view.CategoryName = categoryName.String

	return view, nil
}
