package commands

import (
	"context"

	"deliverus/internal/core/domain/model/order"
)

// SendOrderCommandHandler handles order dispatch.
// Legal only from "in process"; anything else fails with ConflictError.
type SendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendOrderCommandHandler creates a handler for order dispatch.
func NewSendOrderCommandHandler(uowFactory OrderUoWFactory) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch and returns the updated order.
func (h *SendOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SendOrderCommand,
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

	if err = ord.Send(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
