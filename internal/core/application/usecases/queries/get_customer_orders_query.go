package queries

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
	"deliverus/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves the acting customer's orders across all
// restaurants, newest first, each with its line items and a summary of the
// restaurant it was placed with.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	filter     OrdersFilter

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	filter OrdersFilter,
) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		filter:     filter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// RestaurantSummaryResponse is the restaurant digest embedded in a
// customer's order listing.
type RestaurantSummaryResponse struct {
	ID                    kernel.UUID
	Name                  string
	Logo                  string
	ShippingCosts         float64
	AverageServiceMinutes *float64
}

// CustomerOrderResponse is one order in a customer's history.
type CustomerOrderResponse struct {
	OrderResponse

	Restaurant RestaurantSummaryResponse
}
