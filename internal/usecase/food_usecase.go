package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// AddFoodInput carries the fields for adding a new food item to a
// restaurant's menu.
type AddFoodInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	Vegetarian  bool       `json:"vegetarian"`
	Restaurant  *EntityRef `json:"restaurant"`
}

// UpdateFoodInput carries a partial food update. Nil fields are left
// unchanged; a zero price means the price is not being changed.
type UpdateFoodInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Price       float64    `json:"price"`
	Vegetarian  *bool      `json:"vegetarian"`
	Restaurant  *EntityRef `json:"restaurant"`
}

// FoodUsecase defines the interface for menu item workflows
type FoodUsecase interface {
	// List retrieves all food items
	List(ctx context.Context) ([]*entity.Food, error)

	// GetByID retrieves a single food item by id
	GetByID(ctx context.Context, id int64) (*entity.Food, error)

	// GetByRestaurant retrieves the menu of the given restaurant
	GetByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Food, error)

	// GetByPriceRange retrieves all food items priced within [minPrice, maxPrice]
	GetByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Food, error)

	// GetByCategory retrieves all food items in the given category
	GetByCategory(ctx context.Context, category string) ([]*entity.Food, error)

	// GetByName retrieves all food items with the given name
	GetByName(ctx context.Context, name string) ([]*entity.Food, error)

	// GetVegetarian retrieves all vegetarian food items
	GetVegetarian(ctx context.Context) ([]*entity.Food, error)

	// Add creates a new food item under an existing restaurant
	Add(ctx context.Context, input *AddFoodInput) (*entity.Food, error)

	// Update applies a partial update to an existing food item
	Update(ctx context.Context, id int64, input *UpdateFoodInput) (*entity.Food, error)

	// DeleteByID removes an existing food item
	DeleteByID(ctx context.Context, id int64) error
}
