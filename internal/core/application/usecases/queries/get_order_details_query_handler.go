package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/user"
	"deliverus/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler retrieves one order's detail view from the
// database in a single join across orders, restaurants and users.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail lookups.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the detail query. Returns ObjectNotFoundError when the
// order does not exist.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
			r.description,
			r.address,
			r.postal_code,
			r.url,
			r.shipping_costs,
			r.average_service_minutes,
			r.email,
			r.phone,
			r.logo,
			r.hero_image,
			r.status,
			r.category_id,
			u.first_name,
			u.email,
			u.avatar,
			u.user_type
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN users u ON u.id = o.user_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var id, userID, restaurantID uuid.UUID
	var categoryID *uuid.UUID
	var startedAt, sentAt, deliveredAt sql.NullTime
	var avgMinutes sql.NullFloat64
	var userType string
	var resp GetOrderDetailsQueryResponse

	err := row.Scan(
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
		&resp.Restaurant.Description,
		&resp.Restaurant.Address,
		&resp.Restaurant.PostalCode,
		&resp.Restaurant.URL,
		&resp.Restaurant.ShippingCosts,
		&avgMinutes,
		&resp.Restaurant.Email,
		&resp.Restaurant.Phone,
		&resp.Restaurant.Logo,
		&resp.Restaurant.HeroImage,
		&resp.Restaurant.Status,
		&categoryID,
		&resp.User.FirstName,
		&resp.User.Email,
		&resp.User.Avatar,
		&userType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderDetailsQueryResponse{},
			errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.Restaurant.ID = resp.RestaurantID
	resp.User.ID = resp.UserID

	if categoryID != nil {
		category, idErr := kernel.UUIDFromBytes((*categoryID)[:])
		if idErr != nil {
			return GetOrderDetailsQueryResponse{}, idErr
		}
		resp.Restaurant.CategoryID = &category
	}

	if avgMinutes.Valid {
		minutes := avgMinutes.Float64
		resp.Restaurant.AverageServiceMinutes = &minutes
	}

	role, err := user.ParseRole(userType)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.User.UserType = role

	resp.StartedAt = nullableTime(startedAt)
	resp.SentAt = nullableTime(sentAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.Status = order.StatusOf(resp.StartedAt, resp.SentAt, resp.DeliveredAt)

	plain := []OrderResponse{resp.OrderResponse}
	if err = attachLines(ctx, h.db, plain); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.Lines = plain[0].Lines

	return resp, nil
}
