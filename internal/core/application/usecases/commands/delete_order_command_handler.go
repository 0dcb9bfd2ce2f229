package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles order destruction.
// The order must still be pending; the state is re-read inside the
// transaction immediately before deleting.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order destruction.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Fails with ObjectNotFoundError if the order does not exist and with
// ConflictError if it has already been started.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.EnsurePending(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, ord.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
