// Package validation contains the pre-condition rule set that runs before
// the order use cases. A rule failure short-circuits the request with a
// structured field-level error before any side effect occurs.
package validation

import (
	"context"
	"strings"
	"unicode/utf8"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/core/ports"
	"deliverus/internal/pkg/errs"
)

const maxAddressLength = 255

// OrderRules validates create and update requests against the catalogue:
// restaurant existence, product availability, the same-restaurant invariant,
// and address shape. Rules run in order and stop at the first failure.
type OrderRules struct {
	orders      ports.OrderRepository
	restaurants ports.RestaurantRepository
	products    ports.ProductRepository
}

// NewOrderRules creates the rule set over the given read ports.
func NewOrderRules(
	orders ports.OrderRepository,
	restaurants ports.RestaurantRepository,
	products ports.ProductRepository,
) OrderRules {
	return OrderRules{
		orders:      orders,
		restaurants: restaurants,
		products:    products,
	}
}

// ValidateCreate checks the rules for placing a new order:
//  1. restaurantId references an existing restaurant
//  2. products is a non-empty list of valid (productId, quantity) pairs
//  3. every product is available
//  4. all products belong to the same single restaurant
//  5. address is a non-empty trimmed string of at most 255 characters
func (r OrderRules) ValidateCreate(
	ctx context.Context,
	restaurantID kernel.UUID,
	address string,
	lines []services.LineRequest,
) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValidationError("restaurantId", "restaurantId is required")
	}

	exists, err := r.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewValidationError("restaurantId", "the restaurant does not exist")
	}

	if _, err = r.checkProducts(ctx, lines); err != nil {
		return err
	}

	return checkAddress(address)
}

// ValidateUpdate checks the rules for editing an existing order:
//  1. restaurantId must NOT be present (the restaurant cannot change)
//  2. products is a non-empty list of valid (productId, quantity) pairs
//  3. every product is available
//  4. all products belong to the order's original restaurant
//  5. address is a non-empty trimmed string of at most 255 characters
func (r OrderRules) ValidateUpdate(
	ctx context.Context,
	orderID kernel.UUID,
	restaurantIDPresent bool,
	address string,
	lines []services.LineRequest,
) error {
	if restaurantIDPresent {
		return errs.NewValidationError("restaurantId", "the restaurant cannot be changed")
	}

	productsRestaurant, err := r.checkProducts(ctx, lines)
	if err != nil {
		return err
	}

	ord, err := r.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if !productsRestaurant.IsEqual(ord.RestaurantID()) {
		return errs.NewValidationError("products",
			"all products do not belong to the order's restaurant")
	}

	return checkAddress(address)
}

// checkProducts validates the line request shape, product availability and
// the same-restaurant invariant. Each productId may appear at most once;
// order lines are keyed by (orderId, productId). Returns the single
// restaurant the products belong to.
func (r OrderRules) checkProducts(
	ctx context.Context,
	lines []services.LineRequest,
) (kernel.UUID, error) {
	if len(lines) == 0 {
		return kernel.UUID{}, errs.NewValidationError("products",
			"products must be a non-empty array")
	}

	ids := make([]kernel.UUID, 0, len(lines))
	seen := make(map[kernel.UUID]bool, len(lines))
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return kernel.UUID{}, errs.NewValidationError("products",
				"each product needs a valid productId")
		}
		if line.Quantity < 1 {
			return kernel.UUID{}, errs.NewValidationError("products",
				"each product needs a quantity greater than 0")
		}
		if seen[line.ProductID] {
			return kernel.UUID{}, errs.NewValidationError("products",
				"each productId may appear only once")
		}
		seen[line.ProductID] = true
		ids = append(ids, line.ProductID)
	}

	products, err := r.products.GetByIDs(ctx, ids)
	if err != nil {
		return kernel.UUID{}, err
	}

	byID := make(map[kernel.UUID]bool, len(products))
	var restaurantID kernel.UUID
	for i, p := range products {
		byID[p.ID()] = true
		if !p.IsAvailable() {
			return kernel.UUID{}, errs.NewValidationError("products", "product not available")
		}
		if i == 0 {
			restaurantID = p.RestaurantID()
		} else if !p.RestaurantID().IsEqual(restaurantID) {
			return kernel.UUID{}, errs.NewValidationError("products",
				"all products do not belong to the same restaurant")
		}
	}

	for _, id := range ids {
		if !byID[id] {
			return kernel.UUID{}, errs.NewValidationError("products", "the product does not exist")
		}
	}

	return restaurantID, nil
}

func checkAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValidationError("address", "address is required")
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return errs.NewValidationError("address", "address must be at most 255 characters")
	}
	return nil
}
