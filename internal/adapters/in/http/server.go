// Package http exposes the order operations over HTTP using echo. Every
// request flows through validation rules and the access guard before a
// command or query handler runs.
package http

import (
	"context"
	"net/http"
	"time"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/application/usecases/queries"
	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/user"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/core/ports"
	"deliverus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	sendOrderHandler    commands.SendOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler

	restaurantOrdersHandler    queries.GetRestaurantOrdersQueryHandler
	customerOrdersHandler      queries.GetCustomerOrdersQueryHandler
	orderDetailsHandler        queries.GetOrderDetailsQueryHandler
	restaurantAnalyticsHandler queries.GetRestaurantAnalyticsQueryHandler

	rules       validation.OrderRules
	accessGuard services.AccessGuard

	orders      ports.OrderRepository
	restaurants ports.RestaurantRepository
}

// NewServer creates an HTTP server over the given use-case handlers and
// read ports. The order and restaurant repositories serve the pre-handler
// access checks.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	sendOrderHandler commands.SendOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	restaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	orderDetailsHandler queries.GetOrderDetailsQueryHandler,
	restaurantAnalyticsHandler queries.GetRestaurantAnalyticsQueryHandler,
	rules validation.OrderRules,
	orders ports.OrderRepository,
	restaurants ports.RestaurantRepository,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		confirmOrderHandler:        confirmOrderHandler,
		sendOrderHandler:           sendOrderHandler,
		deliverOrderHandler:        deliverOrderHandler,
		restaurantOrdersHandler:    restaurantOrdersHandler,
		customerOrdersHandler:      customerOrdersHandler,
		orderDetailsHandler:        orderDetailsHandler,
		restaurantAnalyticsHandler: restaurantAnalyticsHandler,
		rules:                      rules,
		accessGuard:                services.NewAccessGuard(),
		orders:                     orders,
		restaurants:                restaurants,
	}
}

// RegisterRoutes mounts all order operations behind the actor middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, users ports.UserRepository) {
	api := e.Group("", ActorMiddleware(users))

	api.GET("/orders", s.GetCustomerOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.PATCH("/orders/:orderId/confirm", s.ConfirmOrder)
	api.PATCH("/orders/:orderId/send", s.SendOrder)
	api.PATCH("/orders/:orderId/deliver", s.DeliverOrder)
	api.GET("/restaurants/:restaurantId/orders", s.GetRestaurantOrders)
	api.GET("/restaurants/:restaurantId/analytics", s.GetRestaurantAnalytics)
}

// GetCustomerOrders handles GET /orders - the acting customer's order
// history, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	if actor.Role() != user.RoleCustomer {
		return writeError(ctx, errs.NewForbiddenError("only customers have an order history"))
	}

	filter, err := bindOrdersFilter(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID(), filter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CustomerOrderJSON, 0, len(orders))
	for _, resp := range orders {
		response = append(response, CustomerOrderJSON{
			OrderJSON: orderJSON(resp.OrderResponse),
			Restaurant: RestaurantSummaryJSON{
				ID:                    resp.Restaurant.ID.String(),
				Name:                  resp.Restaurant.Name,
				Logo:                  resp.Restaurant.Logo,
				ShippingCosts:         resp.Restaurant.ShippingCosts,
				AverageServiceMinutes: resp.Restaurant.AverageServiceMinutes,
			},
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders - a customer places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	if actor.Role() != user.RoleCustomer {
		return writeError(ctx, errs.NewForbiddenError("only customers can place orders"))
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return writeError(ctx, errs.NewValidationError("restaurantId", "restaurantId is invalid"))
	}

	lines, err := lineRequests(request.Products)
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.rules.ValidateCreate(reqCtx, restaurantID, request.Address, lines); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), actor.ID(), restaurantID, request.Address, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(reqCtx, cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, aggregateOrderJSON(created))
}

// GetOrder handles GET /orders/:orderId - the full order detail view.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkOrderAccess(ctx, actor, orderID); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.orderDetailsHandler.Handle(reqCtx, query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetailsJSON{
		OrderJSON: orderJSON(details.OrderResponse),
		Restaurant: RestaurantDetailsJSON{
			ID:                    details.Restaurant.ID.String(),
			Name:                  details.Restaurant.Name,
			Description:           details.Restaurant.Description,
			Address:               details.Restaurant.Address,
			PostalCode:            details.Restaurant.PostalCode,
			URL:                   details.Restaurant.URL,
			ShippingCosts:         details.Restaurant.ShippingCosts,
			AverageServiceMinutes: details.Restaurant.AverageServiceMinutes,
			Email:                 details.Restaurant.Email,
			Phone:                 details.Restaurant.Phone,
			Logo:                  details.Restaurant.Logo,
			HeroImage:             details.Restaurant.HeroImage,
			Status:                details.Restaurant.Status,
			CategoryID:            uuidString(details.Restaurant.CategoryID),
		},
		User: UserSummaryJSON{
			ID:        details.User.ID.String(),
			FirstName: details.User.FirstName,
			Email:     details.User.Email,
			Avatar:    details.User.Avatar,
			UserType:  details.User.UserType.String(),
		},
	})
}

// UpdateOrder handles PUT /orders/:orderId - a customer edits a pending
// order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	lines, err := lineRequests(request.Products)
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	ord, err := s.orders.Get(reqCtx, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessGuard.CanAccessAsCustomer(actor, ord); err != nil {
		return writeError(ctx, err)
	}

	err = s.rules.ValidateUpdate(reqCtx, orderID, request.RestaurantID != nil, request.Address, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, request.Address, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(reqCtx, cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, aggregateOrderJSON(updated))
}

// DeleteOrder handles DELETE /orders/:orderId - a customer destroys a
// pending order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	ord, err := s.orders.Get(reqCtx, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessGuard.CanAccessAsCustomer(actor, ord); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(reqCtx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "Order deleted successfully",
	})
}

// ConfirmOrder handles PATCH /orders/:orderId/confirm - the owning
// restaurant starts preparing the order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, func(reqCtx echo.Context, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return nil, err
		}
		return s.confirmOrderHandler.Handle(reqCtx.Request().Context(), cmd)
	})
}

// SendOrder handles PATCH /orders/:orderId/send - the order leaves the
// restaurant.
func (s *Server) SendOrder(ctx echo.Context) error {
	return s.transition(ctx, func(reqCtx echo.Context, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewSendOrderCommand(orderID)
		if err != nil {
			return nil, err
		}
		return s.sendOrderHandler.Handle(reqCtx.Request().Context(), cmd)
	})
}

// DeliverOrder handles PATCH /orders/:orderId/deliver - the order reaches
// the customer and the restaurant's average service time is refreshed.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, func(reqCtx echo.Context, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return nil, err
		}
		return s.deliverOrderHandler.Handle(reqCtx.Request().Context(), cmd)
	})
}

// GetRestaurantOrders handles GET /restaurants/:restaurantId/orders - the
// owner's view of the restaurant's order book.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkRestaurantAccess(reqCtx, actor, restaurantID); err != nil {
		return writeError(ctx, err)
	}

	filter, err := bindOrdersFilter(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.restaurantOrdersHandler.Handle(reqCtx, query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderJSON, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderJSON(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantAnalytics handles GET /restaurants/:restaurantId/analytics -
// the owner's daily report.
func (s *Server) GetRestaurantAnalytics(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkRestaurantAccess(reqCtx, actor, restaurantID); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantAnalyticsQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.restaurantAnalyticsHandler.Handle(reqCtx, query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AnalyticsJSON{
		RestaurantID:            report.RestaurantID.String(),
		NumYesterdayOrders:      report.NumYesterdayOrders,
		NumPendingOrders:        report.NumPendingOrders,
		NumDeliveredTodayOrders: report.NumDeliveredTodayOrders,
		InvoicedToday:           report.InvoicedToday,
	})
}

// transition runs one lifecycle command on behalf of the owning
// restaurant's actor: load order, check ownership, execute, reply.
func (s *Server) transition(
	ctx echo.Context,
	run func(echo.Context, kernel.UUID) (*order.Order, error),
) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewForbiddenError("no acting user"))
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	ord, err := s.orders.Get(reqCtx, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	rest, err := s.restaurants.Get(reqCtx, ord.RestaurantID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessGuard.CanAccessAsOwner(actor, rest.UserID()); err != nil {
		return writeError(ctx, err)
	}

	updated, err := run(ctx, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, aggregateOrderJSON(updated))
}

// checkOrderAccess verifies the actor may view the order: the ordering
// customer or the owner of the order's restaurant.
func (s *Server) checkOrderAccess(ctx echo.Context, actor services.Actor, orderID kernel.UUID) error {
	reqCtx := ctx.Request().Context()

	ord, err := s.orders.Get(reqCtx, orderID)
	if err != nil {
		return err
	}

	rest, err := s.restaurants.Get(reqCtx, ord.RestaurantID())
	if err != nil {
		return err
	}

	return s.accessGuard.CanAccess(actor, ord, rest.UserID())
}

// checkRestaurantAccess verifies the actor owns the restaurant.
func (s *Server) checkRestaurantAccess(
	reqCtx context.Context,
	actor services.Actor,
	restaurantID kernel.UUID,
) error {
	rest, err := s.restaurants.Get(reqCtx, restaurantID)
	if err != nil {
		return err
	}

	return s.accessGuard.CanAccessAsOwner(actor, rest.UserID())
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(name, ctx.Param(name), err)
	}
	return id, nil
}

func lineRequests(products []OrderLineRequest) ([]services.LineRequest, error) {
	lines := make([]services.LineRequest, 0, len(products))
	for _, p := range products {
		productID, err := kernel.UUIDFromString(p.ProductID)
		if err != nil {
			return nil, errs.NewValidationError("products", "productId is invalid")
		}

		lines = append(lines, services.LineRequest{ProductID: productID, Quantity: p.Quantity})
	}
	return lines, nil
}

// bindOrdersFilter reads the status/from/to query parameters. The dates are
// calendar dates; they become local midnights, with the upper bound
// stretched to the end of its day by the filter itself.
func bindOrdersFilter(ctx echo.Context) (queries.OrdersFilter, error) {
	var statusPtr *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return queries.OrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		statusPtr = &status
	}

	var fromDate, toDate *types.Date
	if err := runtime.BindQueryParameter(
		"form", true, false, "from", ctx.QueryParams(), &fromDate); err != nil {
		return queries.OrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("from", err)
	}
	if err := runtime.BindQueryParameter(
		"form", true, false, "to", ctx.QueryParams(), &toDate); err != nil {
		return queries.OrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("to", err)
	}

	return queries.NewOrdersFilter(statusPtr, localMidnight(fromDate), localMidnight(toDate))
}

func localMidnight(date *types.Date) *time.Time {
	if date == nil {
		return nil
	}

	year, month, day := date.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &midnight
}
