package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodRepository implements the repository.FoodRepository interface using GORM.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{db: db}
}

// FindAll retrieves every food row.
func (repo *foodRepository) FindAll(ctx context.Context) ([]*entity.Food, error) {
	var foodsM []*model.FoodModel
	if err := repo.db.WithContext(ctx).Find(&foodsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list food")
	}

	return toFoodDomains(foodsM), nil
}

// FindByID retrieves a single food item by its unique ID.
func (repo *foodRepository) FindByID(ctx context.Context, id int64) (*entity.Food, error) {
	var foodM model.FoodModel
	if err := repo.db.WithContext(ctx).First(&foodM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by id")
	}

	return toFoodDomain(&foodM), nil
}

// FindByRestaurant retrieves all food items owned by the given restaurant.
func (repo *foodRepository) FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Food, error) {
	var foodsM []*model.FoodModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Find(&foodsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food by restaurant")
	}

	return toFoodDomains(foodsM), nil
}

// FindByPriceRange retrieves all food items priced within [minPrice, maxPrice].
func (repo *foodRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Food, error) {
	var foodsM []*model.FoodModel
	if err := repo.db.WithContext(ctx).
		Where("price BETWEEN ? AND ?", minPrice, maxPrice).
		Find(&foodsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food by price range")
	}

	return toFoodDomains(foodsM), nil
}

// FindByCategory retrieves all food items in the given category.
func (repo *foodRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Food, error) {
	var foodsM []*model.FoodModel
	if err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&foodsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food by category")
	}

	return toFoodDomains(foodsM), nil
}

// FindByName retrieves all food items with the given name.
func (repo *foodRepository) FindByName(ctx context.Context, name string) ([]*entity.Food, error) {
	var foodsM []*model.FoodModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Find(&foodsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food by name")
	}

	return toFoodDomains(foodsM), nil
}

// FindVegetarian retrieves all food items flagged as vegetarian.
func (repo *foodRepository) FindVegetarian(ctx context.Context) ([]*entity.Food, error) {
	var foodsM []*model.FoodModel
	if err := repo.db.WithContext(ctx).
		Where("vegetarian = ?", true).
		Find(&foodsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vegetarian food")
	}

	return toFoodDomains(foodsM), nil
}

// Create persists a new food entity to the database.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("referenced restaurant does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingData.WrapMessage("missing required food information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	food.ID = foodM.ID

	return nil
}

// Update modifies an existing food entity in the database.
func (repo *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Save(foodM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("referenced restaurant does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update food")
	}

	return nil
}

// Delete removes a food entity from the database.
func (repo *foodRepository) Delete(ctx context.Context, food *entity.Food) error {
	if err := repo.db.WithContext(ctx).Delete(&model.FoodModel{}, food.ID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete food")
	}

	return nil
}

// --- Mapper Functions ---

// toFoodDomain converts a GORM FoodModel to a domain Food entity.
func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Price:        data.Price,
		Vegetarian:   data.Vegetarian,
		RestaurantID: data.RestaurantID,
	}
}

func toFoodDomains(data []*model.FoodModel) []*entity.Food {
	foods := make([]*entity.Food, 0, len(data))
	for _, foodM := range data {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods
}

// fromFoodDomain converts a domain Food entity to a GORM FoodModel for persistence.
func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Price:        data.Price,
		Vegetarian:   data.Vegetarian,
		RestaurantID: data.RestaurantID,
	}
}
