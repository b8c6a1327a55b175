package usecase

import (
	"context"
	"time"

	"bistro/internal/domain/entity"
)

// AddReviewInput carries the fields for publishing a review of a
// completed order. All references and fields are required.
type AddReviewInput struct {
	Customer    *EntityRef `json:"customer"`
	Restaurant  *EntityRef `json:"restaurant"`
	Order       *EntityRef `json:"order"`
	Name        string     `json:"name"`
	Rating      *int       `json:"rating"`
	Description string     `json:"description"`
}

// UpdateReviewInput carries a partial review update. Nil fields are
// left unchanged.
type UpdateReviewInput struct {
	Name        *string `json:"name"`
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// ReviewUsecase defines the interface for review workflows
type ReviewUsecase interface {
	// List retrieves all reviews
	List(ctx context.Context) ([]*entity.Review, error)

	// GetByID retrieves a single review by id
	GetByID(ctx context.Context, id int64) (*entity.Review, error)

	// GetByRestaurant retrieves all reviews for the given restaurant
	GetByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Review, error)

	// GetByCustomer retrieves all reviews written by the given customer
	GetByCustomer(ctx context.Context, customerID int64) ([]*entity.Review, error)

	// GetByDate retrieves all reviews written at exactly the given time
	GetByDate(ctx context.Context, reviewTime time.Time) ([]*entity.Review, error)

	// Add publishes a review for an order that has none yet
	Add(ctx context.Context, input *AddReviewInput) (*entity.Review, error)

	// Update applies a partial update to an existing review
	Update(ctx context.Context, id int64, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteByID removes an existing review
	DeleteByID(ctx context.Context, id int64) error
}
