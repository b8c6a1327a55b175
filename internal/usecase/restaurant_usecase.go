package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// RegisterRestaurantInput carries the fields for registering a new
// restaurant. All fields are required and enforced at the transport
// boundary by the request validator.
type RegisterRestaurantInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Address     string `json:"address" validate:"required"`
	District    string `json:"district" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// UpdateRestaurantInput carries a partial restaurant update. Nil fields
// are left unchanged.
type UpdateRestaurantInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	District    *string `json:"district"`
	PhoneNumber *string `json:"phoneNumber"`
}

// RestaurantUsecase defines the interface for restaurant workflows
type RestaurantUsecase interface {
	// List retrieves all restaurants
	List(ctx context.Context) ([]*entity.Restaurant, error)

	// GetByID retrieves a single restaurant by id
	GetByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// GetByName retrieves all restaurants with the given name
	GetByName(ctx context.Context, name string) ([]*entity.Restaurant, error)

	// GetByDistrict retrieves the restaurant registered in the given district
	GetByDistrict(ctx context.Context, district string) (*entity.Restaurant, error)

	// Register creates a new restaurant
	Register(ctx context.Context, input *RegisterRestaurantInput) (*entity.Restaurant, error)

	// Update applies a partial update to an existing restaurant
	Update(ctx context.Context, id int64, input *UpdateRestaurantInput) (*entity.Restaurant, error)

	// DeleteByID removes an existing restaurant
	DeleteByID(ctx context.Context, id int64) error
}
