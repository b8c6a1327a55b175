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

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service instance
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
	}
}

// List retrieves all restaurants
func (s *restaurantService) List(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := s.restaurantRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

// GetByID retrieves a single restaurant by id
func (s *restaurantService) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant does not exist")
		}

		return nil, errors.Wrap(err, "failed to get restaurant by id")
	}

	return restaurant, nil
}

// GetByName retrieves all restaurants with the given name
func (s *restaurantService) GetByName(ctx context.Context, name string) ([]*entity.Restaurant, error) {
	restaurants, err := s.restaurantRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get restaurants by name")
	}

	return restaurants, nil
}

// GetByDistrict retrieves the restaurant registered in the given district
func (s *restaurantService) GetByDistrict(ctx context.Context, district string) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByDistrict(ctx, district)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no restaurant in district")
		}

		return nil, errors.Wrap(err, "failed to get restaurant by district")
	}

	return restaurant, nil
}

// Register creates a new restaurant. Field presence is enforced by the
// transport validator; nothing is re-checked here.
func (s *restaurantService) Register(ctx context.Context, input *usecase.RegisterRestaurantInput) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		District:    input.District,
		PhoneNumber: input.PhoneNumber,
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// Update applies a partial update to an existing restaurant
func (s *restaurantService) Update(ctx context.Context, id int64, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant does not exist")
		}

		return nil, errors.Wrap(err, "failed to get restaurant for update")
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.District != nil {
		restaurant.District = *input.District
	}
	if input.PhoneNumber != nil {
		restaurant.PhoneNumber = *input.PhoneNumber
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// DeleteByID removes an existing restaurant
func (s *restaurantService) DeleteByID(ctx context.Context, id int64) error {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("restaurant does not exist")
		}

		return errors.Wrap(err, "failed to get restaurant for delete")
	}

	return s.restaurantRepo.Delete(ctx, restaurant)
}
