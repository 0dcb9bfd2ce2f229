// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The lifecycle timestamps are nullable; the derived status is
// never stored.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;index"`
	Address       string
	Price         float64
	ShippingCosts float64
	CreatedAt     time.Time
	StartedAt     *time.Time
	SentAt        *time.Time
	DeliveredAt   *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one line item of an order. UnityPrice is the
// snapshot captured when the line was written, not the product's live price.
type OrderLineDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
	UnityPrice float64
}

// TableName overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation,
// line items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make([]OrderLineDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, OrderLineDTO{
			OrderID:    aggregate.ID().Bytes(),
			ProductID:  line.ProductID().Bytes(),
			Quantity:   line.Quantity(),
			UnityPrice: line.UnityPrice(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		RestaurantID:  aggregate.RestaurantID().Bytes(),
		Address:       aggregate.Address(),
		Price:         aggregate.Price(),
		ShippingCosts: aggregate.ShippingCosts(),
		CreatedAt:     aggregate.CreatedAt(),
		StartedAt:     aggregate.StartedAt(),
		SentAt:        aggregate.SentAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, which revalidates the timestamp chain.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, idErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Quantity, lineDTO.UnityPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		userID,
		restaurantID,
		dto.Address,
		lines,
		dto.Price,
		dto.ShippingCosts,
		dto.CreatedAt,
		dto.StartedAt,
		dto.SentAt,
		dto.DeliveredAt,
	)
}
