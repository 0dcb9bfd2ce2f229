package order

import (
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

// Line is a value object for one order line item. The unit price is a
// snapshot of the product's price taken when the order was created or
// updated; it is never re-read from the live product afterwards.
type Line struct {
	productID  kernel.UUID
	quantity   int
	unityPrice float64
}

// NewLine creates a validated line item.
func NewLine(productID kernel.UUID, quantity int, unityPrice float64) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unityPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unityPrice",
			fmt.Errorf("%f is negative", unityPrice))
	}

	return Line{
		productID:  productID,
		quantity:   quantity,
		unityPrice: unityPrice,
	}, nil
}

// ProductID returns the referenced product's identity.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnityPrice returns the unit price snapshot.
func (l Line) UnityPrice() float64 {
	return l.unityPrice
}
