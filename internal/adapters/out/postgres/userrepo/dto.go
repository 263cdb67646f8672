// Package userrepo provides data transfer objects and mapping functions
// for user profile persistence. The primary key is the auth provider's
// subject UUID, not a local surrogate.
package userrepo

import (
	"time"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user profiles.
type UserDTO struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email     string    `gorm:"size:255;uniqueIndex"`
	FullName  string    `gorm:"size:255"`
	Role      string    `gorm:"size:24;index"`
	StoreID   *int64    `gorm:"index"`
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:       aggregate.ID().Bytes(),
		Email:    aggregate.Email(),
		FullName: aggregate.FullName(),
		Role:     aggregate.Role().String(),
		StoreID:  aggregate.StoreID(),
		Active:   aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.FullName, role, dto.StoreID, dto.Active)
}
