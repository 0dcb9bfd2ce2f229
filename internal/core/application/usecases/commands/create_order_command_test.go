package commands_test

import (
	"testing"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLineRequests() []services.LineRequest {
	return []services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 2}}
}

func TestNewCreateOrderCommand(t *testing.T) {
	orderID, customerID, restaurantID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			orderID, customerID, restaurantID, "Calle Betis 1", validLineRequests())
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Calle Betis 1", cmd.Address())
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("missing customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, kernel.UUID{}, restaurantID, "Calle Betis 1", validLineRequests())
		require.Error(t, err)
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, restaurantID, "", validLineRequests())
		require.Error(t, err)
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, restaurantID, "Calle Betis 1", nil)
		require.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
