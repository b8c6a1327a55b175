package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// AddOrderInput carries the fields for placing a new order. The food
// references are resolved against the store; client-supplied food
// bodies are never trusted.
type AddOrderInput struct {
	Customer     *EntityRef   `json:"customer"`
	Foods        []*EntityRef `json:"foods"`
	Address      string       `json:"address"`
	DeliveryType string       `json:"deliveryType"`
}

// UpdateOrderInput carries a partial order update. Nil fields are left
// unchanged; a nil food list keeps the existing associations.
type UpdateOrderInput struct {
	Foods        []*EntityRef `json:"foods"`
	Address      *string      `json:"address"`
	DeliveryType *string      `json:"deliveryType"`
	Status       *string      `json:"status"`
}

// OrderUsecase defines the interface for order workflows
type OrderUsecase interface {
	// List retrieves all orders
	List(ctx context.Context) ([]*entity.Order, error)

	// GetByID retrieves a single order by id
	GetByID(ctx context.Context, id int64) (*entity.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer
	GetByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)

	// GetByRestaurant retrieves all orders containing food of the given restaurant
	GetByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Order, error)

	// Add places a new order for an existing customer
	Add(ctx context.Context, input *AddOrderInput) (*entity.Order, error)

	// Update applies a partial update to an existing order
	Update(ctx context.Context, id int64, input *UpdateOrderInput) (*entity.Order, error)
}
