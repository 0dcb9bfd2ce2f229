// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to the order row (address, pricing, lifecycle
	// timestamps). Line items are handled by ReplaceLines.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceLines deletes the order's existing line items and inserts the
	// aggregate's current line set with its unit-price snapshots.
	ReplaceLines(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order; its line items are removed by cascade.
	// Returns ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order with its line items.
	// Returns ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AverageServiceMinutes computes the average time from creation to
	// delivery, in minutes, across the restaurant's delivered orders.
	// Returns nil when the restaurant has no delivered orders.
	AverageServiceMinutes(ctx context.Context, restaurantID kernel.UUID) (*float64, error)
}
