package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// The store recomputes each order's total amount from its associated food
// prices on read; callers never supply it.
type OrderRepository interface {
	// FindAll retrieves every order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByCustomer retrieves all orders placed by the given customer.
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)

	// FindByRestaurant retrieves all orders containing at least one food item
	// owned by the given restaurant.
	FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Order, error)

	// ExistsByID reports whether an order with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order entity in the storage, replacing its
	// food associations with the ones on the entity.
	Update(ctx context.Context, order *entity.Order) error
}
