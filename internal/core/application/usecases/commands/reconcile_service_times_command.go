package commands

import (
	"errors"

	"deliverus/internal/pkg/guard"
)

var (
	ErrReconcileServiceTimesCommandIsNotConstructed = errors.New(
		"ReconcileServiceTimesCommand must be created via NewReconcileServiceTimesCommand constructor",
	)
)

// ReconcileServiceTimesCommand triggers a recomputation of every
// restaurant's average service time. Run by the nightly job to repair any
// drift left by the per-delivery updates.
type ReconcileServiceTimesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileServiceTimesCommand creates a parameterless reconciliation command.
func NewReconcileServiceTimesCommand() ReconcileServiceTimesCommand {
	return ReconcileServiceTimesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileServiceTimesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileServiceTimesCommandIsNotConstructed)
}
