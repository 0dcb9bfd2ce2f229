package commands

import (
	"context"
)

// ReconcileServiceTimesCommandHandler recomputes the average service time of
// every restaurant from its delivered orders and persists the results in one
// transaction.
type ReconcileServiceTimesCommandHandler struct {
	uowFactory ServiceTimeUoWFactory
}

// NewReconcileServiceTimesCommandHandler creates a handler for the reconciliation.
func NewReconcileServiceTimesCommandHandler(
	uowFactory ServiceTimeUoWFactory,
) ReconcileServiceTimesCommandHandler {
	return ReconcileServiceTimesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recomputes and persists the averages for all restaurants.
func (h *ReconcileServiceTimesCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileServiceTimesCommand,
) error {
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

	restaurantRepo := uow.RestaurantRepository()
	orderRepo := uow.OrderRepository()

	ids, err := restaurantRepo.GetAllIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		minutes, avgErr := orderRepo.AverageServiceMinutes(ctx, id)
		if avgErr != nil {
			return avgErr
		}

		if err = restaurantRepo.UpdateAverageServiceMinutes(ctx, id, minutes); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
