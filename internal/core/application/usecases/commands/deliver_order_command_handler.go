package commands

import (
	"context"

	"deliverus/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler handles the final delivery transition.
// Legal only from "sent". As a side effect, the restaurant's rolling average
// service time is recomputed across its delivered orders and persisted in
// the same transaction.
type DeliverOrderCommandHandler struct {
	uowFactory ServiceTimeUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(uowFactory ServiceTimeUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery and returns the updated order.
func (h *DeliverOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverOrderCommand,
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

	if err = ord.Deliver(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	minutes, err := orderRepo.AverageServiceMinutes(ctx, ord.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = uow.RestaurantRepository().UpdateAverageServiceMinutes(ctx, ord.RestaurantID(), minutes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
