package impl

import (
	"context"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (usecase.OrderUsecase, *mockRepo.MockOrderRepository, *mockRepo.MockCustomerRepository, *mockRepo.MockFoodRepository) {
	t.Helper()
	orderRepo := mockRepo.NewMockOrderRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	foodRepo := mockRepo.NewMockFoodRepository(t)
	service := NewOrderService(OrderServiceParams{
		OrderRepo:    orderRepo,
		CustomerRepo: customerRepo,
		FoodRepo:     foodRepo,
	})

	return service, orderRepo, customerRepo, foodRepo
}

func TestOrderService_Add(t *testing.T) {
	service, orderRepo, customerRepo, foodRepo := newOrderService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(customer, nil)
	foodRepo.On("FindByID", ctx, int64(11)).Return(&entity.Food{ID: 11, Name: "Margherita", Price: 9.50}, nil)
	foodRepo.On("FindByID", ctx, int64(12)).Return(&entity.Food{ID: 12, Name: "Tiramisu", Price: 4.25}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = 21
		}).
		Return(nil)

	before := time.Now()
	order, err := service.Add(ctx, &usecase.AddOrderInput{
		Customer:     refTo(7),
		Foods:        []*usecase.EntityRef{refTo(11), refTo(12)},
		Address:      "1 Main St",
		DeliveryType: "SHIPPING",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.False(t, order.Paid)
	assert.Equal(t, entity.DeliveryTypeShipping, order.DeliveryType)
	assert.InDelta(t, 13.75, order.TotalAmount, 1e-9)
	assert.False(t, order.OrderTime.Before(before))
}

func TestOrderService_Add_MissingFoodAbortsWithoutPersist(t *testing.T) {
	service, orderRepo, customerRepo, foodRepo := newOrderService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: 7}
	customerRepo.On("FindByID", ctx, int64(7)).Return(customer, nil)
	foodRepo.On("FindByID", ctx, int64(11)).Return(&entity.Food{ID: 11, Price: 9.50}, nil)
	foodRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrFoodNotFound)

	_, err := service.Add(ctx, &usecase.AddOrderInput{
		Customer:     refTo(7),
		Foods:        []*usecase.EntityRef{refTo(11), refTo(99)},
		Address:      "1 Main St",
		DeliveryType: "PICKUP",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Add_MissingRequiredField(t *testing.T) {
	service, _, _, _ := newOrderService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.AddOrderInput
	}{
		{"no customer", &usecase.AddOrderInput{Foods: []*usecase.EntityRef{refTo(11)}, Address: "a", DeliveryType: "PICKUP"}},
		{"no foods", &usecase.AddOrderInput{Customer: refTo(7), Address: "a", DeliveryType: "PICKUP"}},
		{"no address", &usecase.AddOrderInput{Customer: refTo(7), Foods: []*usecase.EntityRef{refTo(11)}, DeliveryType: "PICKUP"}},
		{"no delivery type", &usecase.AddOrderInput{Customer: refTo(7), Foods: []*usecase.EntityRef{refTo(11)}, Address: "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Add(ctx, tc.input)
			assert.ErrorIs(t, err, domainerrors.ErrMissingData)
		})
	}
}

func TestOrderService_Add_UnknownDeliveryType(t *testing.T) {
	service, _, _, _ := newOrderService(t)
	ctx := context.Background()

	_, err := service.Add(ctx, &usecase.AddOrderInput{
		Customer:     refTo(7),
		Foods:        []*usecase.EntityRef{refTo(11)},
		Address:      "1 Main St",
		DeliveryType: "TELEPORT",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Add_CustomerMissing(t *testing.T) {
	service, orderRepo, customerRepo, _ := newOrderService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, int64(42)).Return(nil, repository.ErrCustomerNotFound)

	_, err := service.Add(ctx, &usecase.AddOrderInput{
		Customer:     refTo(42),
		Foods:        []*usecase.EntityRef{refTo(11)},
		Address:      "1 Main St",
		DeliveryType: "PICKUP",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Update_Partial(t *testing.T) {
	service, orderRepo, _, _ := newOrderService(t)
	ctx := context.Background()

	stored := &entity.Order{
		ID:           21,
		CustomerID:   7,
		Foods:        []*entity.Food{{ID: 11, Price: 9.50}},
		Address:      "1 Main St",
		DeliveryType: entity.DeliveryTypePickup,
		Status:       entity.OrderStatusPending,
	}
	reloaded := &entity.Order{
		ID:           21,
		CustomerID:   7,
		Foods:        []*entity.Food{{ID: 11, Price: 9.50}},
		TotalAmount:  9.50,
		Address:      "1 Main St",
		DeliveryType: entity.DeliveryTypePickup,
		Status:       entity.OrderStatusProcessing,
	}
	orderRepo.On("FindByID", ctx, int64(21)).Return(stored, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	orderRepo.On("FindByID", ctx, int64(21)).Return(reloaded, nil).Once()

	order, err := service.Update(ctx, 21, &usecase.UpdateOrderInput{
		Status: strPtr("PROCESSING"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.InDelta(t, 9.50, order.TotalAmount, 1e-9)
}

func TestOrderService_Update_UnknownStatus(t *testing.T) {
	service, orderRepo, _, _ := newOrderService(t)
	ctx := context.Background()

	stored := &entity.Order{ID: 21, Status: entity.OrderStatusPending}
	orderRepo.On("FindByID", ctx, int64(21)).Return(stored, nil)

	_, err := service.Update(ctx, 21, &usecase.UpdateOrderInput{Status: strPtr("LOST")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_Update_ReplacesFoodsUnchecked(t *testing.T) {
	service, orderRepo, _, foodRepo := newOrderService(t)
	ctx := context.Background()

	stored := &entity.Order{ID: 21, Foods: []*entity.Food{{ID: 11}}, Status: entity.OrderStatusPending, DeliveryType: entity.DeliveryTypePickup}
	orderRepo.On("FindByID", ctx, int64(21)).Return(stored, nil).Once()
	orderRepo.On("Update", ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return len(order.Foods) == 2 && order.Foods[0].ID == 11 && order.Foods[1].ID == 12
	})).Return(nil)
	orderRepo.On("FindByID", ctx, int64(21)).Return(stored, nil).Once()

	_, err := service.Update(ctx, 21, &usecase.UpdateOrderInput{
		Foods: []*usecase.EntityRef{refTo(11), refTo(12)},
	})
	require.NoError(t, err)
	foodRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_GetByRestaurant(t *testing.T) {
	service, orderRepo, _, _ := newOrderService(t)
	ctx := context.Background()

	stored := []*entity.Order{{ID: 21}, {ID: 22}}
	orderRepo.On("FindByRestaurant", ctx, int64(3)).Return(stored, nil)

	orders, err := service.GetByRestaurant(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
