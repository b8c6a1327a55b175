package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrFoodNotFound is a domain-specific error returned when a food item is not found.
var ErrFoodNotFound = errors.New("food not found")

// FoodRepository defines the standard operations for food item persistence.
type FoodRepository interface {
	// FindAll retrieves every food item.
	FindAll(ctx context.Context) ([]*entity.Food, error)

	// FindByID retrieves a single food item by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Food, error)

	// FindByRestaurant retrieves all food items owned by the given restaurant.
	FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Food, error)

	// FindByPriceRange retrieves all food items priced within [minPrice, maxPrice].
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Food, error)

	// FindByCategory retrieves all food items in the given category.
	FindByCategory(ctx context.Context, category string) ([]*entity.Food, error)

	// FindByName retrieves all food items with the given name.
	FindByName(ctx context.Context, name string) ([]*entity.Food, error)

	// FindVegetarian retrieves all food items flagged as vegetarian.
	FindVegetarian(ctx context.Context) ([]*entity.Food, error)

	// Create persists a new food entity to the storage.
	Create(ctx context.Context, food *entity.Food) error

	// Update modifies an existing food entity in the storage.
	Update(ctx context.Context, food *entity.Food) error

	// Delete removes a food entity from the storage.
	Delete(ctx context.Context, food *entity.Food) error
}
