package queries

import (
	"errors"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
	"deliverus/internal/pkg/guard"
)

var (
	ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
	)
)

// GetRestaurantOrdersQuery retrieves a restaurant's orders with their line
// items, optionally narrowed by an OrdersFilter. This is the owner's view of
// the order book.
//
// Example:
//
//	filter, _ := queries.NewOrdersFilter(nil, nil, nil)
//	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, filter)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	filter       OrdersFilter

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's orders.
func NewGetRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	filter OrdersFilter,
) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		filter:       filter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OrderLineResponse is one line item of a listed order, carrying the unit
// price snapshotted when the line was written.
type OrderLineResponse struct {
	ProductID  kernel.UUID
	Quantity   int
	UnityPrice float64
}

// OrderResponse is one order in a listing, with its derived status and lines.
type OrderResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	RestaurantID  kernel.UUID
	Address       string
	Price         float64
	ShippingCosts float64
	Status        order.Status
	CreatedAt     time.Time
	StartedAt     *time.Time
	SentAt        *time.Time
	DeliveredAt   *time.Time
	Lines         []OrderLineResponse
}
