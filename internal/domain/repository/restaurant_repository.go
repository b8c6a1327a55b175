package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrRestaurantNotFound is a domain-specific error returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// FindAll retrieves every restaurant.
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByID retrieves a single restaurant by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// FindByName retrieves all restaurants with the given name.
	FindByName(ctx context.Context, name string) ([]*entity.Restaurant, error)

	// FindByDistrict retrieves the restaurant registered in the given district.
	FindByDistrict(ctx context.Context, district string) (*entity.Restaurant, error)

	// ExistsByID reports whether a restaurant with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new restaurant entity to the storage.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies an existing restaurant entity in the storage.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes a restaurant entity from the storage.
	Delete(ctx context.Context, restaurant *entity.Restaurant) error
}
