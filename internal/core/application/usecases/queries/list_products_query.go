package queries

import (
	"errors"

	"ckms/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves a page of catalog products. All filters
// are optional and combine with AND: category, production stage, active
// flag, and a case-insensitive search over name and SKU.
type ListProductsQuery struct {
	page        int
	limit       int
	categoryID  *int64
	productType *string
	active      *bool
	search      string

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query for a page of products.
func NewListProductsQuery(
	page, limit int,
	categoryID *int64,
	productType *string,
	active *bool,
	search string,
) ListProductsQuery {
	page, limit = normalizePage(page, limit)
	return ListProductsQuery{
		page:        page,
		limit:       limit,
		categoryID:  categoryID,
		productType: productType,
		active:      active,
		search:      search,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Page returns the requested page number, starting at 1.
func (q ListProductsQuery) Page() int { return q.page }

// Limit returns the page size.
func (q ListProductsQuery) Limit() int { return q.limit }

// CategoryID returns the category filter, or nil.
func (q ListProductsQuery) CategoryID() *int64 { return q.categoryID }

// ProductType returns the production stage filter, or nil.
func (q ListProductsQuery) ProductType() *string { return q.productType }

// Active returns the active flag filter, or nil.
func (q ListProductsQuery) Active() *bool { return q.active }

// Search returns the name/SKU search term. Empty means no search.
func (q ListProductsQuery) Search() string { return q.search }

// ProductView is the read model for one catalog product.
type ProductView struct {
	ID           int64   `json:"id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price"`
	Type         string  `json:"productType"`
	CategoryID   *int64  `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	Active       bool    `json:"active"`
}

// ListProductsQueryResponse is one page of products with pagination
// metadata.
type ListProductsQueryResponse struct {
	Products []ProductView
	Meta     PageMeta
}
