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

func newFoodService(t *testing.T) (usecase.FoodUsecase, *mockRepo.MockFoodRepository, *mockRepo.MockRestaurantRepository) {
	t.Helper()
	foodRepo := mockRepo.NewMockFoodRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	service := NewFoodService(FoodServiceParams{
		FoodRepo:       foodRepo,
		RestaurantRepo: restaurantRepo,
	})

	return service, foodRepo, restaurantRepo
}

func TestFoodService_Add(t *testing.T) {
	service, foodRepo, restaurantRepo := newFoodService(t)
	ctx := context.Background()

	restaurantRepo.On("ExistsByID", ctx, int64(3)).Return(true, nil)
	foodRepo.On("Create", ctx, mock.AnythingOfType("*entity.Food")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Food).ID = 11
		}).
		Return(nil)

	food, err := service.Add(ctx, &usecase.AddFoodInput{
		Name:        "Margherita",
		Description: "Tomato, mozzarella, basil",
		Category:    "pizza",
		Price:       9.50,
		Vegetarian:  true,
		Restaurant:  refTo(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), food.ID)
	assert.Equal(t, int64(3), food.RestaurantID)
	assert.True(t, food.Vegetarian)
}

func TestFoodService_Add_RestaurantMissing(t *testing.T) {
	service, foodRepo, restaurantRepo := newFoodService(t)
	ctx := context.Background()

	restaurantRepo.On("ExistsByID", ctx, int64(99)).Return(false, nil)

	_, err := service.Add(ctx, &usecase.AddFoodInput{
		Name:        "Margherita",
		Description: "Tomato, mozzarella, basil",
		Category:    "pizza",
		Price:       9.50,
		Restaurant:  refTo(99),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	foodRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFoodService_Add_NoRestaurantRef(t *testing.T) {
	service, _, _ := newFoodService(t)
	ctx := context.Background()

	_, err := service.Add(ctx, &usecase.AddFoodInput{
		Name:        "Margherita",
		Description: "Tomato, mozzarella, basil",
		Category:    "pizza",
		Price:       9.50,
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingData)
}

func TestFoodService_Add_NonPositivePrice(t *testing.T) {
	service, _, _ := newFoodService(t)
	ctx := context.Background()

	for _, price := range []float64{0, -1.5} {
		_, err := service.Add(ctx, &usecase.AddFoodInput{
			Name:        "Margherita",
			Description: "Tomato, mozzarella, basil",
			Category:    "pizza",
			Price:       price,
			Restaurant:  refTo(3),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestFoodService_Update_ZeroPriceLeavesPriceAlone(t *testing.T) {
	service, foodRepo, _ := newFoodService(t)
	ctx := context.Background()

	stored := &entity.Food{ID: 11, Name: "Margherita", Description: "d", Category: "pizza", Price: 9.50, RestaurantID: 3}
	foodRepo.On("FindByID", ctx, int64(11)).Return(stored, nil)
	foodRepo.On("Update", ctx, mock.AnythingOfType("*entity.Food")).Return(nil)

	food, err := service.Update(ctx, 11, &usecase.UpdateFoodInput{
		Name: strPtr("Margherita DOC"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Margherita DOC", food.Name)
	assert.Equal(t, 9.50, food.Price)
}

func TestFoodService_Update_MovesToAnotherRestaurantUnchecked(t *testing.T) {
	service, foodRepo, restaurantRepo := newFoodService(t)
	ctx := context.Background()

	stored := &entity.Food{ID: 11, Name: "Margherita", Description: "d", Category: "pizza", Price: 9.50, RestaurantID: 3}
	foodRepo.On("FindByID", ctx, int64(11)).Return(stored, nil)
	foodRepo.On("Update", ctx, mock.MatchedBy(func(f *entity.Food) bool {
		return f.RestaurantID == 7
	})).Return(nil)

	food, err := service.Update(ctx, 11, &usecase.UpdateFoodInput{
		Restaurant: refTo(7),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), food.RestaurantID)
	restaurantRepo.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
}

func TestFoodService_Update_NoRestaurantRefKeepsRestaurant(t *testing.T) {
	service, foodRepo, _ := newFoodService(t)
	ctx := context.Background()

	stored := &entity.Food{ID: 11, Name: "Margherita", Price: 9.50, RestaurantID: 3}
	foodRepo.On("FindByID", ctx, int64(11)).Return(stored, nil)
	foodRepo.On("Update", ctx, mock.AnythingOfType("*entity.Food")).Return(nil)

	food, err := service.Update(ctx, 11, &usecase.UpdateFoodInput{
		Category: strPtr("pizza napoletana"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), food.RestaurantID)
}

func TestFoodService_Update_NegativePriceRejected(t *testing.T) {
	service, foodRepo, _ := newFoodService(t)
	ctx := context.Background()

	stored := &entity.Food{ID: 11, Name: "Margherita", Price: 9.50, RestaurantID: 3}
	foodRepo.On("FindByID", ctx, int64(11)).Return(stored, nil)

	_, err := service.Update(ctx, 11, &usecase.UpdateFoodInput{Price: -2})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	foodRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFoodService_GetByID_NotFound(t *testing.T) {
	service, foodRepo, _ := newFoodService(t)
	ctx := context.Background()

	foodRepo.On("FindByID", ctx, int64(42)).Return(nil, repository.ErrFoodNotFound)

	_, err := service.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFoodService_GetVegetarian(t *testing.T) {
	service, foodRepo, _ := newFoodService(t)
	ctx := context.Background()

	stored := []*entity.Food{
		{ID: 11, Name: "Margherita", Vegetarian: true},
		{ID: 12, Name: "Caprese", Vegetarian: true},
	}
	foodRepo.On("FindVegetarian", ctx).Return(stored, nil)

	foods, err := service.GetVegetarian(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestFoodService_DeleteByID(t *testing.T) {
	service, foodRepo, _ := newFoodService(t)
	ctx := context.Background()

	stored := &entity.Food{ID: 11, Name: "Margherita"}
	foodRepo.On("FindByID", ctx, int64(11)).Return(stored, nil)
	foodRepo.On("Delete", ctx, stored).Return(nil)

	require.NoError(t, service.DeleteByID(ctx, 11))
}
