// Package restaurant contains the Restaurant read model. The order workflow
// reads the default shipping cost and owner identity from it, and writes back
// the derived average service time as a side effect of delivery.
package restaurant

import (
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

// Restaurant is a view of a restaurant as seen by the order workflow.
type Restaurant struct {
	id                    kernel.UUID
	userID                kernel.UUID
	name                  string
	shippingCosts         float64
	averageServiceMinutes *float64
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	userID kernel.UUID,
	name string,
	shippingCosts float64,
	averageServiceMinutes *float64,
) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if shippingCosts < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("shippingCosts",
			fmt.Errorf("%f is negative", shippingCosts))
	}

	return &Restaurant{
		id:                    id,
		userID:                userID,
		name:                  name,
		shippingCosts:         shippingCosts,
		averageServiceMinutes: averageServiceMinutes,
	}, nil
}

// ID returns the restaurant's identity.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// UserID returns the owning user's identity.
func (r *Restaurant) UserID() kernel.UUID {
	return r.userID
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// ShippingCosts returns the default shipping fee charged when an order does
// not qualify for free shipping.
func (r *Restaurant) ShippingCosts() float64 {
	return r.shippingCosts
}

// AverageServiceMinutes returns the rolling average time from order creation
// to delivery, or nil when nothing has been delivered yet.
func (r *Restaurant) AverageServiceMinutes() *float64 {
	return r.averageServiceMinutes
}
