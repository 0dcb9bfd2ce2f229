package queries

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/user"
	"deliverus/internal/pkg/errs"
	"deliverus/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery retrieves one order joined with the full restaurant
// attribute set, the ordering user's summary and the line items.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for a single order's details.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RestaurantDetailsResponse is the restaurant attribute set embedded in an
// order's detail view.
type RestaurantDetailsResponse struct {
	ID                    kernel.UUID
	Name                  string
	Description           string
	Address               string
	PostalCode            string
	URL                   string
	ShippingCosts         float64
	AverageServiceMinutes *float64
	Email                 string
	Phone                 string
	Logo                  string
	HeroImage             string
	Status                string
	CategoryID            *kernel.UUID
}

// UserSummaryResponse is the ordering user's digest embedded in an order's
// detail view.
type UserSummaryResponse struct {
	ID        kernel.UUID
	FirstName string
	Email     string
	Avatar    string
	UserType  user.Role
}

// GetOrderDetailsQueryResponse is the full detail view of one order.
type GetOrderDetailsQueryResponse struct {
	OrderResponse

	Restaurant RestaurantDetailsResponse
	User       UserSummaryResponse
}
