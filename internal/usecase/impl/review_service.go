package impl

import (
	"context"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	customerRepo   repository.CustomerRepository
	restaurantRepo repository.RestaurantRepository
	orderRepo      repository.OrderRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo     repository.ReviewRepository
	CustomerRepo   repository.CustomerRepository
	RestaurantRepo repository.RestaurantRepository
	OrderRepo      repository.OrderRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:     params.ReviewRepo,
		customerRepo:   params.CustomerRepo,
		restaurantRepo: params.RestaurantRepo,
		orderRepo:      params.OrderRepo,
	}
}

// List retrieves all reviews
func (s *reviewService) List(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// GetByID retrieves a single review by id
func (s *reviewService) GetByID(ctx context.Context, id int64) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("review does not exist")
		}

		return nil, errors.Wrap(err, "failed to get review by id")
	}

	return review, nil
}

// GetByRestaurant retrieves all reviews for the given restaurant
func (s *reviewService) GetByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reviews by restaurant")
	}

	return reviews, nil
}

// GetByCustomer retrieves all reviews written by the given customer
func (s *reviewService) GetByCustomer(ctx context.Context, customerID int64) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reviews by customer")
	}

	return reviews, nil
}

// GetByDate retrieves all reviews written at exactly the given time
func (s *reviewService) GetByDate(ctx context.Context, reviewTime time.Time) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByReviewTime(ctx, reviewTime)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reviews by date")
	}

	return reviews, nil
}

// Add publishes a review for an order. The checks run in a fixed
// order: an existing review for the order wins over any missing
// reference, then customer, restaurant, and order are verified.
func (s *reviewService) Add(ctx context.Context, input *usecase.AddReviewInput) (*entity.Review, error) {
	customerID, ok := input.Customer.ResolvedID()
	if !ok {
		return nil, domainerrors.ErrMissingData.WrapMessage("customer is required")
	}
	restaurantID, ok := input.Restaurant.ResolvedID()
	if !ok {
		return nil, domainerrors.ErrMissingData.WrapMessage("restaurant is required")
	}
	orderID, ok := input.Order.ResolvedID()
	if !ok {
		return nil, domainerrors.ErrMissingData.WrapMessage("order is required")
	}
	if input.Name == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("name is required")
	}
	if input.Rating == nil {
		return nil, domainerrors.ErrMissingData.WrapMessage("rating is required")
	}
	if input.Description == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("description is required")
	}

	reviewed, err := s.reviewRepo.ExistsByOrderID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check review existence")
	}
	if reviewed {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("review for order already exists")
	}

	customerExists, err := s.customerRepo.ExistsByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check customer existence")
	}
	if !customerExists {
		return nil, domainerrors.ErrNotFound.WrapMessage("customer does not exist")
	}

	restaurantExists, err := s.restaurantRepo.ExistsByID(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check restaurant existence")
	}
	if !restaurantExists {
		return nil, domainerrors.ErrNotFound.WrapMessage("restaurant does not exist")
	}

	orderExists, err := s.orderRepo.ExistsByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check order existence")
	}
	if !orderExists {
		return nil, domainerrors.ErrNotFound.WrapMessage("order does not exist")
	}

	review := &entity.Review{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		OrderID:      orderID,
		Name:         input.Name,
		Rating:       *input.Rating,
		Description:  input.Description,
		ReviewTime:   time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Update applies a partial update to an existing review
func (s *reviewService) Update(ctx context.Context, id int64, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("review does not exist")
		}

		return nil, errors.Wrap(err, "failed to get review for update")
	}

	if input.Name != nil {
		review.Name = *input.Name
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Description != nil {
		review.Description = *input.Description
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteByID removes an existing review
func (s *reviewService) DeleteByID(ctx context.Context, id int64) error {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("review does not exist")
		}

		return errors.Wrap(err, "failed to get review for delete")
	}

	return s.reviewRepo.Delete(ctx, review)
}
