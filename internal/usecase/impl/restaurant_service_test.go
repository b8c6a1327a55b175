package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRestaurantService(t *testing.T) (usecase.RestaurantUsecase, *mockRepo.MockRestaurantRepository) {
	t.Helper()
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	service := NewRestaurantService(RestaurantServiceParams{RestaurantRepo: restaurantRepo})

	return service, restaurantRepo
}

func TestRestaurantService_Register(t *testing.T) {
	service, restaurantRepo := newRestaurantService(t)
	ctx := context.Background()

	restaurantRepo.On("Create", ctx, mock.AnythingOfType("*entity.Restaurant")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Restaurant).ID = 3
		}).
		Return(nil)

	restaurant, err := service.Register(ctx, &usecase.RegisterRestaurantInput{
		Name:        "Trattoria Roma",
		Description: "Neapolitan pizza and pasta",
		Address:     "12 Old Town Sq",
		District:    "Old Town",
		PhoneNumber: "555-0142",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), restaurant.ID)
	assert.Equal(t, "Trattoria Roma", restaurant.Name)
	assert.Equal(t, "Old Town", restaurant.District)
}

func TestRestaurantService_GetByDistrict(t *testing.T) {
	service, restaurantRepo := newRestaurantService(t)
	ctx := context.Background()

	stored := &entity.Restaurant{ID: 3, Name: "Trattoria Roma", District: "Old Town"}
	restaurantRepo.On("FindByDistrict", ctx, "Old Town").Return(stored, nil)

	restaurant, err := service.GetByDistrict(ctx, "Old Town")
	require.NoError(t, err)
	assert.Equal(t, stored, restaurant)
}

func TestRestaurantService_GetByDistrict_NotFound(t *testing.T) {
	service, restaurantRepo := newRestaurantService(t)
	ctx := context.Background()

	restaurantRepo.On("FindByDistrict", ctx, "Nowhere").Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.GetByDistrict(ctx, "Nowhere")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRestaurantService_GetByName_EmptyResult(t *testing.T) {
	service, restaurantRepo := newRestaurantService(t)
	ctx := context.Background()

	restaurantRepo.On("FindByName", ctx, "Unknown").Return([]*entity.Restaurant{}, nil)

	restaurants, err := service.GetByName(ctx, "Unknown")
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestRestaurantService_Update_Partial(t *testing.T) {
	service, restaurantRepo := newRestaurantService(t)
	ctx := context.Background()

	stored := &entity.Restaurant{
		ID:          3,
		Name:        "Trattoria Roma",
		Description: "Neapolitan pizza and pasta",
		Address:     "12 Old Town Sq",
		District:    "Old Town",
		PhoneNumber: "555-0142",
	}
	restaurantRepo.On("FindByID", ctx, int64(3)).Return(stored, nil)
	restaurantRepo.On("Update", ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil)

	restaurant, err := service.Update(ctx, 3, &usecase.UpdateRestaurantInput{
		PhoneNumber: strPtr("555-0199"),
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", restaurant.PhoneNumber)
	assert.Equal(t, "Trattoria Roma", restaurant.Name)
}

func TestRestaurantService_Update_NotFound(t *testing.T) {
	service, restaurantRepo := newRestaurantService(t)
	ctx := context.Background()

	restaurantRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.Update(ctx, 99, &usecase.UpdateRestaurantInput{Name: strPtr("X")})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRestaurantService_DeleteByID(t *testing.T) {
	service, restaurantRepo := newRestaurantService(t)
	ctx := context.Background()

	stored := &entity.Restaurant{ID: 3, Name: "Trattoria Roma"}
	restaurantRepo.On("FindByID", ctx, int64(3)).Return(stored, nil)
	restaurantRepo.On("Delete", ctx, stored).Return(nil)

	require.NoError(t, service.DeleteByID(ctx, 3))
}
