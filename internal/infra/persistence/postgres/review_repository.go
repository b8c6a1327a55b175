package postgres

import (
	"context"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindAll retrieves every review row.
func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	var reviewsM []*model.ReviewModel
	if err := repo.db.WithContext(ctx).Find(&reviewsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomains(reviewsM), nil
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).First(&reviewM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByRestaurant retrieves all reviews for the given restaurant.
func (repo *reviewRepository) FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	var reviewsM []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Find(&reviewsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by restaurant")
	}

	return toReviewDomains(reviewsM), nil
}

// FindByCustomer retrieves all reviews written by the given customer.
func (repo *reviewRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Review, error) {
	var reviewsM []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&reviewsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by customer")
	}

	return toReviewDomains(reviewsM), nil
}

// FindByReviewTime retrieves all reviews written at exactly the given time.
func (repo *reviewRepository) FindByReviewTime(ctx context.Context, reviewTime time.Time) ([]*entity.Review, error) {
	var reviewsM []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("review_time = ?", reviewTime).
		Find(&reviewsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by time")
	}

	return toReviewDomains(reviewsM), nil
}

// ExistsByOrderID reports whether a review row already exists for the given order.
func (repo *reviewRepository) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review existence by order")
	}

	return count > 0, nil
}

// Create persists a new review entity to the database.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("review for order already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("referenced customer, restaurant or order does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// Update modifies an existing review entity in the database.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Save(reviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}

	return nil
}

// Delete removes a review entity from the database.
func (repo *reviewRepository) Delete(ctx context.Context, review *entity.Review) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, review.ID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}

	return nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		RestaurantID: data.RestaurantID,
		OrderID:      data.OrderID,
		Name:         data.Name,
		Rating:       data.Rating,
		Description:  data.Description,
		ReviewTime:   data.ReviewTime,
	}
}

func toReviewDomains(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel for persistence.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		RestaurantID: data.RestaurantID,
		OrderID:      data.OrderID,
		Name:         data.Name,
		Rating:       data.Rating,
		Description:  data.Description,
		ReviewTime:   data.ReviewTime,
	}
}
