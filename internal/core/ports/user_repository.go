package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/user"
)

// UserRepository defines the read-only contract with the user directory.
// The HTTP adapter resolves the acting user through it.
type UserRepository interface {
	// Get retrieves a user by id.
	// Returns ObjectNotFoundError if the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
