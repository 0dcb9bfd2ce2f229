package services_test

import (
	"testing"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/product"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(t *testing.T, price float64) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), "paella", price, true)
	require.NoError(t, err)
	return p
}

func TestPricingCalculator_Calculate(t *testing.T) {
	calc := services.NewPricingCalculator()

	t.Run("subtotal at or below threshold incurs shipping", func(t *testing.T) {
		p := makeProduct(t, 4.00)
		quote, err := calc.Calculate(
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 2}},
			[]*product.Product{p}, 2.50)
		require.NoError(t, err)

		assert.Equal(t, 8.00, quote.Subtotal)
		assert.Equal(t, 2.50, quote.ShippingCosts)
		assert.Equal(t, 10.50, quote.Total)
	})

	t.Run("subtotal above threshold ships free", func(t *testing.T) {
		p := makeProduct(t, 6.00)
		quote, err := calc.Calculate(
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 2}},
			[]*product.Product{p}, 2.50)
		require.NoError(t, err)

		assert.Equal(t, 12.00, quote.Subtotal)
		assert.Equal(t, 0.0, quote.ShippingCosts)
		assert.Equal(t, 12.00, quote.Total)
	})

	t.Run("subtotal of exactly 10.00 still incurs shipping", func(t *testing.T) {
		p := makeProduct(t, 5.00)
		quote, err := calc.Calculate(
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 2}},
			[]*product.Product{p}, 1.50)
		require.NoError(t, err)

		assert.Equal(t, 10.00, quote.Subtotal)
		assert.Equal(t, 1.50, quote.ShippingCosts)
		assert.Equal(t, 11.50, quote.Total)
	})

	t.Run("lines carry unit price snapshots", func(t *testing.T) {
		a := makeProduct(t, 3.25)
		b := makeProduct(t, 1.10)
		quote, err := calc.Calculate(
			[]services.LineRequest{
				{ProductID: a.ID(), Quantity: 1},
				{ProductID: b.ID(), Quantity: 4},
			},
			[]*product.Product{a, b}, 2.00)
		require.NoError(t, err)

		require.Len(t, quote.Lines, 2)
		assert.Equal(t, 3.25, quote.Lines[0].UnityPrice())
		assert.Equal(t, 1, quote.Lines[0].Quantity())
		assert.Equal(t, 1.10, quote.Lines[1].UnityPrice())
		assert.Equal(t, 4, quote.Lines[1].Quantity())
		assert.InDelta(t, 7.65, quote.Subtotal, 1e-9)
	})

	t.Run("unknown product fails with not found", func(t *testing.T) {
		p := makeProduct(t, 4.00)
		_, err := calc.Calculate(
			[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}},
			[]*product.Product{p}, 2.50)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("empty request set rejected", func(t *testing.T) {
		_, err := calc.Calculate(nil, nil, 2.50)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid quantity rejected", func(t *testing.T) {
		p := makeProduct(t, 4.00)
		_, err := calc.Calculate(
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 0}},
			[]*product.Product{p}, 2.50)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
