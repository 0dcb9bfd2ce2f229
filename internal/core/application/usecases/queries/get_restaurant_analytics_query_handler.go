package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetRestaurantAnalyticsQueryHandler computes a restaurant's daily report
// from the orders table.
type GetRestaurantAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantAnalyticsQueryHandler creates a handler for restaurant
// analytics.
func NewGetRestaurantAnalyticsQueryHandler(db *gorm.DB) GetRestaurantAnalyticsQueryHandler {
	return GetRestaurantAnalyticsQueryHandler{db: db}
}

// Handle runs the four aggregate queries against midnight-aligned windows of
// the server's local day.
func (h GetRestaurantAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantAnalyticsQuery,
) (GetRestaurantAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	restaurantID := query.RestaurantID().Bytes()
	resp := GetRestaurantAnalyticsQueryResponse{RestaurantID: query.RestaurantID()}

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND created_at >= ? AND created_at < ?
	`, restaurantID, yesterday, today).Row().Scan(&resp.NumYesterdayOrders)
	if err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND started_at IS NULL
	`, restaurantID).Row().Scan(&resp.NumPendingOrders)
	if err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND delivered_at >= ?
	`, restaurantID, today).Row().Scan(&resp.NumDeliveredTodayOrders)
	if err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(price), 0)
		FROM orders
		WHERE restaurant_id = ? AND created_at >= ?
	`, restaurantID, today).Row().Scan(&resp.InvoicedToday)
	if err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	return resp, nil
}
