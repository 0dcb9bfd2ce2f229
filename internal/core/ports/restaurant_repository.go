package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the read/write contract the order workflow
// has with the restaurant store. Restaurants are owned by another part of
// the system; the only write is the derived average service time.
type RestaurantRepository interface {
	// Get retrieves a restaurant by id.
	// Returns ObjectNotFoundError if the restaurant does not exist.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// Exists reports whether a restaurant with the given id exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// GetAllIDs returns the ids of all restaurants. Used by the service-time
	// reconciliation job.
	GetAllIDs(ctx context.Context) ([]kernel.UUID, error)

	// UpdateAverageServiceMinutes persists the recomputed rolling average
	// service time. A nil value clears it (no delivered orders).
	UpdateAverageServiceMinutes(ctx context.Context, id kernel.UUID, minutes *float64) error
}
