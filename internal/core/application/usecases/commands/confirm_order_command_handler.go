package commands

import (
	"context"

	"deliverus/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler handles order confirmation.
// The order's persisted state is re-read inside the transaction immediately
// before the transition; a second confirm fails with ConflictError. There is
// no optimistic concurrency token, so two simultaneous confirms race and the
// last successful write wins.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation and returns the updated order.
func (h *ConfirmOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmOrderCommand,
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

	if err = ord.Confirm(); err != nil {
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
