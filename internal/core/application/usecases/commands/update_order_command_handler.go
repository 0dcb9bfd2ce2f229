package commands

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles order edits.
// Re-reads the order inside the transaction (update is legal only while
// pending), recomputes the price from the new line list, and replaces the
// line items wholesale with fresh unit-price snapshots. Rollback on failure
// leaves the prior lines and price untouched.
type UpdateOrderCommandHandler struct {
	uowFactory PricingUoWFactory
	pricing    services.PricingCalculator
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory PricingUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingCalculator(),
	}
}

// Handle processes the order update command and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, ord.RestaurantID())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		ids = append(ids, line.ProductID)
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	quote, err := h.pricing.Calculate(cmd.Lines(), products, rest.ShippingCosts())
	if err != nil {
		return nil, err
	}

	if err = ord.ChangeDetails(cmd.Address(), quote.Lines, quote.Total, quote.ShippingCosts); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = orderRepo.ReplaceLines(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
