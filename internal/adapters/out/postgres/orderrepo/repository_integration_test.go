package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"deliverus/internal/adapters/out/postgres/orderrepo"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), 2, 4.25)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Av. Reina Mercedes s/n",
		[]order.Line{line},
		11.00,
		2.50,
	)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.assertOrderCount(1)

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(1), lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.True(loaded.UserID().IsEqual(testOrder.UserID()))
	suite.Equal(testOrder.Address(), loaded.Address())
	suite.Equal(testOrder.Price(), loaded.Price())
	suite.Equal(testOrder.ShippingCosts(), loaded.ShippingCosts())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.Require().Len(loaded.Lines(), 1)
	suite.Equal(testOrder.Lines()[0].Quantity(), loaded.Lines()[0].Quantity())
	suite.Equal(testOrder.Lines()[0].UnityPrice(), loaded.Lines()[0].UnityPrice())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleTimestamps() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInProcess, loaded.Status())
	suite.Require().NotNil(loaded.StartedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesZeroShippingCosts() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	line, err := order.NewLine(kernel.NewUUID(), 3, 4.00)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.ChangeDetails(
		testOrder.Address(), []order.Line{line}, 12.00, 0))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(0.0, loaded.ShippingCosts())
	suite.Equal(12.00, loaded.Price())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReplaceLines_SwapsWholesale() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first, err := order.NewLine(kernel.NewUUID(), 1, 3.00)
	suite.Require().NoError(err)
	second, err := order.NewLine(kernel.NewUUID(), 4, 2.00)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.ChangeDetails(
		testOrder.Address(), []order.Line{first, second}, 11.00, 0))

	suite.Require().NoError(suite.repository.ReplaceLines(ctx, testOrder))

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).
		Where("order_id = ?", testOrder.ID().Bytes()).
		Count(&lineCount).Error)
	suite.Equal(int64(2), lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLines() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.assertOrderCount(0)

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(0), lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAverageServiceMinutes() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	suite.Run("no delivered orders yields nil", func() {
		minutes, err := suite.repository.AverageServiceMinutes(ctx, restaurantID)
		suite.Require().NoError(err)
		suite.Nil(minutes)
	})

	line, err := order.NewLine(kernel.NewUUID(), 1, 11.00)
	suite.Require().NoError(err)

	created := time.Now().Add(-90 * time.Minute).Truncate(time.Second)
	started := created.Add(10 * time.Minute)
	sent := created.Add(20 * time.Minute)
	delivered := created.Add(30 * time.Minute)

	deliveredOrder, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), restaurantID,
		"Av. Reina Mercedes s/n", []order.Line{line}, 11.00, 0,
		created, &started, &sent, &delivered,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, deliveredOrder))

	suite.Run("averages creation to delivery in minutes", func() {
		minutes, avgErr := suite.repository.AverageServiceMinutes(ctx, restaurantID)
		suite.Require().NoError(avgErr)
		suite.Require().NotNil(minutes)
		suite.InDelta(30.0, *minutes, 0.1)
	})
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
