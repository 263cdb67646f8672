package queries

import (
	"context"

	"ckms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMeQueryHandler retrieves the authenticated user's own profile.
type GetMeQueryHandler struct {
	db *gorm.DB
}

// NewGetMeQueryHandler creates a handler for profile queries.
func NewGetMeQueryHandler(db *gorm.DB) GetMeQueryHandler {
	return GetMeQueryHandler{db: db}
}

// Handle executes the query. A missing profile surfaces as an
// ObjectNotFoundError.
func (h GetMeQueryHandler) Handle(ctx context.Context, query GetMeQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.email,
			u.full_name,
			u.role,
			u.store_id,
			s.name,
			u.active
		FROM users u
		LEFT JOIN stores s ON s.id = u.store_id
		WHERE u.id = ?
	`, query.UserID().String()).Rows()
	if err != nil {
		return UserView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserView{}, err
		}
		return UserView{}, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	return scanUserView(rows)
}
