package queries

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
	"deliverus/internal/pkg/guard"
)

var (
	ErrGetRestaurantAnalyticsQueryIsNotConstructed = errors.New(
		"GetRestaurantAnalyticsQuery must be created via NewGetRestaurantAnalyticsQuery constructor",
	)
)

// GetRestaurantAnalyticsQuery retrieves a restaurant's daily order report:
// yesterday's order count, the current pending backlog, today's deliveries
// and today's invoiced total. Days are calendar days in the server's local
// time, midnight-aligned.
//
// Example:
//
//	query, err := queries.NewGetRestaurantAnalyticsQuery(restaurantID)
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("invoiced today: %.2f\n", report.InvoicedToday)
type GetRestaurantAnalyticsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantAnalyticsQuery creates an analytics query for one restaurant.
func NewGetRestaurantAnalyticsQuery(restaurantID kernel.UUID) (GetRestaurantAnalyticsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantAnalyticsQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}

	return GetRestaurantAnalyticsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantAnalyticsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant being reported on.
func (q GetRestaurantAnalyticsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantAnalyticsQueryResponse is the daily report. The four figures
// are independent read-only aggregates; they are not taken under one
// transaction.
type GetRestaurantAnalyticsQueryResponse struct {
	RestaurantID            kernel.UUID
	NumYesterdayOrders      int
	NumPendingOrders        int
	NumDeliveredTodayOrders int
	InvoicedToday           float64
}
