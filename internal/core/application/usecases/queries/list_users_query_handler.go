package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves all user profiles.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for user listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the query and returns all users sorted by email.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]UserView, 0)

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
		ORDER BY u.email
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanUserView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// scanUserView reads one row of the user projection. The column order
// must match the SELECT in the handlers that share it.
func scanUserView(rows *sql.Rows) (UserView, error) {
	var view UserView
	var id uuid.UUID
	var storeID sql.NullInt64
	var storeName sql.NullString

	if err := rows.Scan(
		&id,
		&view.Email,
		&view.FullName,
		&view.Role,
		&storeID,
		&storeName,
		&view.Active,
	); err != nil {
		return UserView{}, err
	}

	view.ID = id.String()
	if storeID.Valid {
		view.StoreID = &storeID.Int64
	}
	view.StoreName = storeName.String

	return view, nil
}
