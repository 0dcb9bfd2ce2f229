package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler retrieves a restaurant's orders from the
// database, line items included.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order
// listings. Requires a GORM database connection for query execution.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by order ID for
// consistent output.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conds := []string{"restaurant_id = ?"}
	args := []any{query.RestaurantID().Bytes()}

	filterConds, filterArgs := query.filter.predicates("")
	conds = append(conds, filterConds...)
	args = append(args, filterArgs...)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			restaurant_id,
			address,
			price,
			shipping_costs,
			created_at,
			started_at,
			sent_at,
			delivered_at
		FROM orders
		WHERE `+strings.Join(conds, " AND ")+`
		ORDER BY id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachLines(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRows reads listing rows whose select list matches OrderResponse's
// order columns, deriving the status from the timestamps.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var id, userID, restaurantID uuid.UUID
		var startedAt, sentAt, deliveredAt sql.NullTime
		var resp OrderResponse

		err := rows.Scan(
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

		resp.StartedAt = nullableTime(startedAt)
		resp.SentAt = nullableTime(sentAt)
		resp.DeliveredAt = nullableTime(deliveredAt)
		resp.Status = order.StatusOf(resp.StartedAt, resp.SentAt, resp.DeliveredAt)

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLines loads the line items of every listed order in one query and
// attaches them in listing order.
func attachLines(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			unity_price
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, product_id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	linesByOrder := make(map[uuid.UUID][]OrderLineResponse, len(orders))
	for rows.Next() {
		var orderID, productID uuid.UUID
		var line OrderLineResponse

		if err = rows.Scan(&orderID, &productID, &line.Quantity, &line.UnityPrice); err != nil {
			return err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}

		linesByOrder[orderID] = append(linesByOrder[orderID], line)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		orders[i].Lines = linesByOrder[orders[i].ID.Bytes()]
	}

	return nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
