// Package restaurantrepo provides persistence for the restaurant read model.
// The full attribute set is stored for the benefit of the read-side queries;
// the domain model only consumes the pricing-relevant subset.
package restaurantrepo

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID `gorm:"type:uuid;index"`
	Name                  string
	Description           string
	Address               string
	PostalCode            string
	URL                   string `gorm:"column:url"`
	ShippingCosts         float64
	AverageServiceMinutes *float64
	Email                 string
	Phone                 string
	Logo                  string
	HeroImage             string
	Status                string
	CategoryID            *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, userID, dto.Name, dto.ShippingCosts, dto.AverageServiceMinutes)
}
