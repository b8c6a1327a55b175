package repository

import (
	"context"
	"errors"
	"time"

	"bistro/internal/domain/entity"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindAll retrieves every review.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindByRestaurant retrieves all reviews for the given restaurant.
	FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Review, error)

	// FindByCustomer retrieves all reviews written by the given customer.
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Review, error)

	// FindByReviewTime retrieves all reviews written at exactly the given time.
	FindByReviewTime(ctx context.Context, reviewTime time.Time) ([]*entity.Review, error)

	// ExistsByOrderID reports whether a review already exists for the given order.
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review entity in the storage.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review entity from the storage.
	Delete(ctx context.Context, review *entity.Review) error
}
