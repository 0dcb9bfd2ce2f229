package queries

import (
	"context"
	"database/sql"
	"strings"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from
// the database, joined with a summary of each order's restaurant.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conds := []string{"o.user_id = ?"}
	args := []any{query.CustomerID().Bytes()}

	filterConds, filterArgs := query.filter.predicates("o.")
	conds = append(conds, filterConds...)
	args = append(args, filterArgs...)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.restaurant_id,
			o.address,
			o.price,
			o.shipping_costs,
			o.created_at,
			o.started_at,
			o.sent_at,
			o.delivered_at,
			r.name,
			r.logo,
			r.shipping_costs,
			r.average_service_minutes
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE `+strings.Join(conds, " AND ")+`
		ORDER BY o.created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]CustomerOrderResponse, 0)

	for rows.Next() {
		var id, userID, restaurantID uuid.UUID
		var startedAt, sentAt, deliveredAt sql.NullTime
		var avgMinutes sql.NullFloat64
		var resp CustomerOrderResponse

		err = rows.Scan(
			&id,
			&userID,
			&restaurantID,
			&resp.Address,
			&resp.Price,
			&resp.ShippingCosts,
			&resp.CreatedAt,
			&startedAt,
			&sentAt,
			&deliveredAt,
			&resp.Restaurant.Name,
			&resp.Restaurant.Logo,
			&resp.Restaurant.ShippingCosts,
			&avgMinutes,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		resp.Restaurant.ID = resp.RestaurantID

		resp.StartedAt = nullableTime(startedAt)
		resp.SentAt = nullableTime(sentAt)
		resp.DeliveredAt = nullableTime(deliveredAt)
		resp.Status = order.StatusOf(resp.StartedAt, resp.SentAt, resp.DeliveredAt)

		if avgMinutes.Valid {
			minutes := avgMinutes.Float64
			resp.Restaurant.AverageServiceMinutes = &minutes
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachCustomerLines(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func attachCustomerLines(ctx context.Context, db *gorm.DB, orders []CustomerOrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	plain := make([]OrderResponse, len(orders))
	for i := range orders {
		plain[i] = orders[i].OrderResponse
	}

	if err := attachLines(ctx, db, plain); err != nil {
		return err
	}

	for i := range orders {
		orders[i].Lines = plain[i].Lines
	}

	return nil
}
