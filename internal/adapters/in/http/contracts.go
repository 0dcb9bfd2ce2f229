package http

import (
	"time"

	"deliverus/internal/core/application/usecases/queries"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body of every non-422 error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FieldError is one entry of a 422 reply.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the JSON body of a 422 reply.
type ValidationErrorResponse struct {
	Code   int          `json:"code"`
	Errors []FieldError `json:"errors"`
}

// OrderLineRequest is one (product, quantity) pair of a create or update
// request.
type OrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	RestaurantID string             `json:"restaurantId"`
	Address      string             `json:"address"`
	Products     []OrderLineRequest `json:"products"`
}

// UpdateOrderRequest is the body of PUT /orders/:orderId. RestaurantID is a
// pointer so its mere presence can be rejected; the restaurant of an order
// cannot change.
type UpdateOrderRequest struct {
	RestaurantID *string            `json:"restaurantId"`
	Address      string             `json:"address"`
	Products     []OrderLineRequest `json:"products"`
}

// OrderLineJSON is one line item of an order reply.
type OrderLineJSON struct {
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity"`
	UnityPrice float64 `json:"unityPrice"`
}

// OrderJSON is the common order shape of all order replies.
type OrderJSON struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	RestaurantID  string          `json:"restaurantId"`
	Address       string          `json:"address"`
	Price         float64         `json:"price"`
	ShippingCosts float64         `json:"shippingCosts"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	StartedAt     *time.Time      `json:"startedAt,omitempty"`
	SentAt        *time.Time      `json:"sentAt,omitempty"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`
	Products      []OrderLineJSON `json:"products"`
}

// RestaurantSummaryJSON is the restaurant digest embedded in customer
// listings.
type RestaurantSummaryJSON struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Logo                  string   `json:"logo,omitempty"`
	ShippingCosts         float64  `json:"shippingCosts"`
	AverageServiceMinutes *float64 `json:"averageServiceMinutes,omitempty"`
}

// CustomerOrderJSON is one order of GET /orders.
type CustomerOrderJSON struct {
	OrderJSON

	Restaurant RestaurantSummaryJSON `json:"restaurant"`
}

// RestaurantDetailsJSON is the restaurant attribute set of an order detail
// reply.
type RestaurantDetailsJSON struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description,omitempty"`
	Address               string   `json:"address"`
	PostalCode            string   `json:"postalCode"`
	URL                   string   `json:"url,omitempty"`
	ShippingCosts         float64  `json:"shippingCosts"`
	AverageServiceMinutes *float64 `json:"averageServiceMinutes,omitempty"`
	Email                 string   `json:"email,omitempty"`
	Phone                 string   `json:"phone,omitempty"`
	Logo                  string   `json:"logo,omitempty"`
	HeroImage             string   `json:"heroImage,omitempty"`
	Status                string   `json:"status,omitempty"`
	CategoryID            *string  `json:"categoryId,omitempty"`
}

// UserSummaryJSON is the ordering user's digest of an order detail reply.
type UserSummaryJSON struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	UserType  string `json:"userType"`
}

// OrderDetailsJSON is the body of GET /orders/:orderId.
type OrderDetailsJSON struct {
	OrderJSON

	Restaurant RestaurantDetailsJSON `json:"restaurant"`
	User       UserSummaryJSON       `json:"user"`
}

// AnalyticsJSON is the body of GET /restaurants/:restaurantId/analytics.
type AnalyticsJSON struct {
	RestaurantID            string  `json:"restaurantId"`
	NumYesterdayOrders      int     `json:"numYesterdayOrders"`
	NumPendingOrders        int     `json:"numPendingOrders"`
	NumDeliveredTodayOrders int     `json:"numDeliveredTodayOrders"`
	InvoicedToday           float64 `json:"invoicedToday"`
}

func orderLineJSON(lines []queries.OrderLineResponse) []OrderLineJSON {
	out := make([]OrderLineJSON, 0, len(lines))
	for _, line := range lines {
		out = append(out, OrderLineJSON{
			ProductID:  line.ProductID.String(),
			Quantity:   line.Quantity,
			UnityPrice: line.UnityPrice,
		})
	}
	return out
}

func orderJSON(resp queries.OrderResponse) OrderJSON {
	return OrderJSON{
		ID:            resp.ID.String(),
		UserID:        resp.UserID.String(),
		RestaurantID:  resp.RestaurantID.String(),
		Address:       resp.Address,
		Price:         resp.Price,
		ShippingCosts: resp.ShippingCosts,
		Status:        resp.Status.String(),
		CreatedAt:     resp.CreatedAt,
		StartedAt:     resp.StartedAt,
		SentAt:        resp.SentAt,
		DeliveredAt:   resp.DeliveredAt,
		Products:      orderLineJSON(resp.Lines),
	}
}

func aggregateOrderJSON(ord *order.Order) OrderJSON {
	lines := ord.Lines()
	products := make([]OrderLineJSON, 0, len(lines))
	for _, line := range lines {
		products = append(products, OrderLineJSON{
			ProductID:  line.ProductID().String(),
			Quantity:   line.Quantity(),
			UnityPrice: line.UnityPrice(),
		})
	}

	return OrderJSON{
		ID:            ord.ID().String(),
		UserID:        ord.UserID().String(),
		RestaurantID:  ord.RestaurantID().String(),
		Address:       ord.Address(),
		Price:         ord.Price(),
		ShippingCosts: ord.ShippingCosts(),
		Status:        ord.Status().String(),
		CreatedAt:     ord.CreatedAt(),
		StartedAt:     ord.StartedAt(),
		SentAt:        ord.SentAt(),
		DeliveredAt:   ord.DeliveredAt(),
		Products:      products,
	}
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
