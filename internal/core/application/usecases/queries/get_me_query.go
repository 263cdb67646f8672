package queries

import (
	"errors"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/pkg/guard"
)

var ErrGetMeQueryIsNotConstructed = errors.New(
	"GetMeQuery must be created via NewGetMeQuery constructor",
)

// GetMeQuery retrieves the profile of the authenticated user.
type GetMeQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMeQuery creates a query for the authenticated user's profile.
func NewGetMeQuery(userID kernel.UUID) (GetMeQuery, error) {
	q := GetMeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUserID(userID); err != nil {
		return GetMeQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

// UserID returns the auth-provider subject of the requester.
func (q GetMeQuery) UserID() kernel.UUID { return q.userID }

func (q *GetMeQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}
