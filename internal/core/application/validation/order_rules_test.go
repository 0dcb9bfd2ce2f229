package validation_test

import (
	"context"
	"strings"
	"testing"

	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/product"
	"deliverus/internal/core/domain/model/restaurant"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) ReplaceLines(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) AverageServiceMinutes(
	ctx context.Context, restaurantID kernel.UUID,
) (*float64, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}
func (m *MockRestaurantRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockRestaurantRepository) GetAllIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}
func (m *MockRestaurantRepository) UpdateAverageServiceMinutes(
	ctx context.Context, id kernel.UUID, minutes *float64,
) error {
	return m.Called(ctx, id, minutes).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func restoreProduct(t *testing.T, restaurantID kernel.UUID, available bool) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), restaurantID, "gazpacho", 3.50, available)
	require.NoError(t, err)
	return p
}

func TestOrderRules_ValidateCreate(t *testing.T) {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	setup := func() (validation.OrderRules, *MockOrderRepository, *MockRestaurantRepository, *MockProductRepository) {
		orders := new(MockOrderRepository)
		restaurants := new(MockRestaurantRepository)
		products := new(MockProductRepository)
		return validation.NewOrderRules(orders, restaurants, products), orders, restaurants, products
	}

	t.Run("valid request passes", func(t *testing.T) {
		rules, _, restaurants, products := setup()
		p := restoreProduct(t, restaurantID, true)

		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Once()
		products.On("GetByIDs", ctx, mock.Anything).Return([]*product.Product{p}, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1",
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 2}})
		require.NoError(t, err)
	})

	t.Run("unknown restaurant fails", func(t *testing.T) {
		rules, _, restaurants, _ := setup()
		restaurants.On("Exists", ctx, restaurantID).Return(false, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1",
			[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}})
		require.ErrorIs(t, err, errs.ErrValidationFailed)

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "restaurantId", vErr.Field)
	})

	t.Run("empty product list fails", func(t *testing.T) {
		rules, _, restaurants, _ := setup()
		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1", nil)
		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("non-positive quantity fails", func(t *testing.T) {
		rules, _, restaurants, _ := setup()
		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1",
			[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 0}})
		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("repeated productId fails", func(t *testing.T) {
		rules, _, restaurants, products := setup()
		productID := kernel.NewUUID()

		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1",
			[]services.LineRequest{
				{ProductID: productID, Quantity: 1},
				{ProductID: productID, Quantity: 2},
			})
		require.ErrorIs(t, err, errs.ErrValidationFailed)

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "products", vErr.Field)
		products.AssertNotCalled(t, "GetByIDs")
	})

	t.Run("unavailable product fails", func(t *testing.T) {
		rules, _, restaurants, products := setup()
		p := restoreProduct(t, restaurantID, false)

		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Once()
		products.On("GetByIDs", ctx, mock.Anything).Return([]*product.Product{p}, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1",
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 1}})
		require.ErrorIs(t, err, errs.ErrValidationFailed)

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "product not available", vErr.Message)
	})

	t.Run("products from different restaurants fail", func(t *testing.T) {
		rules, _, restaurants, products := setup()
		a := restoreProduct(t, restaurantID, true)
		b := restoreProduct(t, kernel.NewUUID(), true)

		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Once()
		products.On("GetByIDs", ctx, mock.Anything).Return([]*product.Product{a, b}, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1",
			[]services.LineRequest{
				{ProductID: a.ID(), Quantity: 1},
				{ProductID: b.ID(), Quantity: 1},
			})
		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("missing product fails", func(t *testing.T) {
		rules, _, restaurants, products := setup()

		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Once()
		products.On("GetByIDs", ctx, mock.Anything).Return([]*product.Product{}, nil).Once()

		err := rules.ValidateCreate(ctx, restaurantID, "Calle Betis 1",
			[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}})
		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("blank or oversized address fails", func(t *testing.T) {
		rules, _, restaurants, products := setup()
		p := restoreProduct(t, restaurantID, true)

		restaurants.On("Exists", ctx, restaurantID).Return(true, nil).Twice()
		products.On("GetByIDs", ctx, mock.Anything).Return([]*product.Product{p}, nil).Twice()
		lines := []services.LineRequest{{ProductID: p.ID(), Quantity: 1}}

		err := rules.ValidateCreate(ctx, restaurantID, "   ", lines)
		require.ErrorIs(t, err, errs.ErrValidationFailed)

		err = rules.ValidateCreate(ctx, restaurantID, strings.Repeat("x", 256), lines)
		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})
}

func TestOrderRules_ValidateUpdate(t *testing.T) {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	makePendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		line, err := order.NewLine(kernel.NewUUID(), 1, 4.00)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), restaurantID,
			"Calle Betis 1", []order.Line{line}, 6.50, 2.50)
		require.NoError(t, err)
		return o
	}

	t.Run("restaurantId present fails", func(t *testing.T) {
		rules := validation.NewOrderRules(
			new(MockOrderRepository), new(MockRestaurantRepository), new(MockProductRepository))

		err := rules.ValidateUpdate(ctx, kernel.NewUUID(), true, "Calle Betis 1",
			[]services.LineRequest{{ProductID: kernel.NewUUID(), Quantity: 1}})
		require.ErrorIs(t, err, errs.ErrValidationFailed)

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "restaurantId", vErr.Field)
	})

	t.Run("products matching the order's restaurant pass", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		rules := validation.NewOrderRules(orders, new(MockRestaurantRepository), products)

		ord := makePendingOrder(t)
		p := restoreProduct(t, restaurantID, true)

		products.On("GetByIDs", ctx, mock.Anything).Return([]*product.Product{p}, nil).Once()
		orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

		err := rules.ValidateUpdate(ctx, ord.ID(), false, "Calle Sierpes 45",
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 2}})
		require.NoError(t, err)
	})

	t.Run("products from another restaurant fail", func(t *testing.T) {
		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		rules := validation.NewOrderRules(orders, new(MockRestaurantRepository), products)

		ord := makePendingOrder(t)
		p := restoreProduct(t, kernel.NewUUID(), true)

		products.On("GetByIDs", ctx, mock.Anything).Return([]*product.Product{p}, nil).Once()
		orders.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

		err := rules.ValidateUpdate(ctx, ord.ID(), false, "Calle Sierpes 45",
			[]services.LineRequest{{ProductID: p.ID(), Quantity: 2}})
		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})
}
