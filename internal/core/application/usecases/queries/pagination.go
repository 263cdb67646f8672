// Package queries contains read operations that return view models
// directly from the database. Implements the query side of the CQRS
// architecture: handlers bypass the domain model and repositories, using
// raw SQL for optimal read performance.
package queries

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage clamps page and limit to sane values. Page numbers start
// at 1.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return page, limit
}

func newPageMeta(total int64, page, limit int) PageMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
