package impl

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type foodService struct {
	foodRepo       repository.FoodRepository
	restaurantRepo repository.RestaurantRepository
}

// FoodServiceParams holds dependencies for FoodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	FoodRepo       repository.FoodRepository
	RestaurantRepo repository.RestaurantRepository
}

// NewFoodService creates a new food service instance
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		foodRepo:       params.FoodRepo,
		restaurantRepo: params.RestaurantRepo,
	}
}

// List retrieves all food items
func (s *foodService) List(ctx context.Context) ([]*entity.Food, error) {
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food")
	}

	return foods, nil
}

// GetByID retrieves a single food item by id
func (s *foodService) GetByID(ctx context.Context, id int64) (*entity.Food, error) {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("food does not exist")
		}

		return nil, errors.Wrap(err, "failed to get food by id")
	}

	return food, nil
}

// GetByRestaurant retrieves the menu of the given restaurant
func (s *foodService) GetByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Food, error) {
	foods, err := s.foodRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get food by restaurant")
	}

	return foods, nil
}

// GetByPriceRange retrieves all food items priced within [minPrice, maxPrice]
func (s *foodService) GetByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Food, error) {
	foods, err := s.foodRepo.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get food by price range")
	}

	return foods, nil
}

// GetByCategory retrieves all food items in the given category
func (s *foodService) GetByCategory(ctx context.Context, category string) ([]*entity.Food, error) {
	foods, err := s.foodRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get food by category")
	}

	return foods, nil
}

// GetByName retrieves all food items with the given name
func (s *foodService) GetByName(ctx context.Context, name string) ([]*entity.Food, error) {
	foods, err := s.foodRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get food by name")
	}

	return foods, nil
}

// GetVegetarian retrieves all vegetarian food items
func (s *foodService) GetVegetarian(ctx context.Context) ([]*entity.Food, error) {
	foods, err := s.foodRepo.FindVegetarian(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vegetarian food")
	}

	return foods, nil
}

// Add creates a new food item under an existing restaurant
func (s *foodService) Add(ctx context.Context, input *usecase.AddFoodInput) (*entity.Food, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("name is required")
	}
	if input.Description == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("description is required")
	}
	if input.Category == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("category is required")
	}
	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}

	restaurantID, ok := input.Restaurant.ResolvedID()
	if !ok {
		return nil, domainerrors.ErrMissingData.WrapMessage("restaurant is required")
	}

	exists, err := s.restaurantRepo.ExistsByID(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check restaurant existence")
	}
	if !exists {
		return nil, domainerrors.ErrNotFound.WrapMessage("restaurant does not exist")
	}

	food := &entity.Food{
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		Vegetarian:   input.Vegetarian,
		RestaurantID: restaurantID,
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}

	return food, nil
}

// Update applies a partial update to an existing food item. A zero
// price means the price is untouched; a supplied price must be positive.
func (s *foodService) Update(ctx context.Context, id int64, input *usecase.UpdateFoodInput) (*entity.Food, error) {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("food does not exist")
		}

		return nil, errors.Wrap(err, "failed to get food for update")
	}

	if input.Name != nil {
		food.Name = *input.Name
	}
	if input.Description != nil {
		food.Description = *input.Description
	}
	if input.Category != nil {
		food.Category = *input.Category
	}
	if input.Price != 0 {
		if input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
		}
		food.Price = input.Price
	}
	if input.Vegetarian != nil {
		food.Vegetarian = *input.Vegetarian
	}
	// The target restaurant is not existence-checked here, unlike Add.
	if restaurantID, ok := input.Restaurant.ResolvedID(); ok {
		food.RestaurantID = restaurantID
	}

	if err := s.foodRepo.Update(ctx, food); err != nil {
		return nil, err
	}

	return food, nil
}

// DeleteByID removes an existing food item
func (s *foodService) DeleteByID(ctx context.Context, id int64) error {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("food does not exist")
		}

		return errors.Wrap(err, "failed to get food for delete")
	}

	return s.foodRepo.Delete(ctx, food)
}
