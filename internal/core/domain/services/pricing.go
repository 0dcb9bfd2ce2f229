package services

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/product"
	"deliverus/internal/pkg/errs"
)

// FreeShippingThreshold is the subtotal above which shipping is free.
// The comparison is a strict greater-than: a subtotal of exactly 10.00
// still incurs the restaurant's default shipping cost.
const FreeShippingThreshold = 10.00

// LineRequest is one requested (product, quantity) pair, before prices are
// resolved.
type LineRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// Quote is the outcome of pricing a line request set: the persisted-ready
// lines with their unit-price snapshots, plus the computed amounts.
type Quote struct {
	Lines         []order.Line
	Subtotal      float64
	ShippingCosts float64
	Total         float64
}

// PricingCalculator computes order totals and shipping costs.
//
// Business rules:
//   - subtotal = Σ(product price × quantity)
//   - shipping is free iff subtotal > 10.00, otherwise the restaurant's
//     default shipping cost applies
//   - total = subtotal + shipping
//   - each line captures the product's price at calculation time
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate resolves each requested product against the given catalogue and
// produces a Quote. Fails with ObjectNotFoundError if any requested product
// is not in the catalogue.
func (PricingCalculator) Calculate(
	requests []LineRequest,
	products []*product.Product,
	defaultShippingCosts float64,
) (Quote, error) {
	if len(requests) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("products")
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	lines := make([]order.Line, 0, len(requests))
	subtotal := 0.0
	for _, req := range requests {
		p, ok := byID[req.ProductID]
		if !ok {
			return Quote{}, errs.NewObjectNotFoundError("productId", req.ProductID.String())
		}

		line, err := order.NewLine(p.ID(), req.Quantity, p.Price())
		if err != nil {
			return Quote{}, err
		}

		lines = append(lines, line)
		subtotal += p.Price() * float64(req.Quantity)
	}

	shipping := defaultShippingCosts
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	return Quote{
		Lines:         lines,
		Subtotal:      subtotal,
		ShippingCosts: shipping,
		Total:         subtotal + shipping,
	}, nil
}
