// Package userrepo provides read-only persistence access to users, used by
// the HTTP adapter to resolve the acting user's role.
package userrepo

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for users.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	Email     string
	Avatar    string
	UserType  string
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.UserType)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.FirstName, dto.Email, dto.Avatar, role)
}
