// Package product contains the Product read model. Products are owned by the
// catalogue side of the system; the order workflow only reads price,
// availability and restaurant ownership from them.
package product

import (
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

// Product is a read-only view of a restaurant's product.
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        float64
	availability bool
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	price float64,
	availability bool,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := restaurantID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}

	return &Product{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		availability: availability,
	}, nil
}

// ID returns the product's identity.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// RestaurantID returns the owning restaurant's identity.
func (p *Product) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current price.
func (p *Product) Price() float64 {
	return p.price
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.availability
}
