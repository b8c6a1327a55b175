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

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	foodRepo     repository.FoodRepository
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	CustomerRepo repository.CustomerRepository
	FoodRepo     repository.FoodRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		customerRepo: params.CustomerRepo,
		foodRepo:     params.FoodRepo,
	}
}

// List retrieves all orders
func (s *orderService) List(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetByID retrieves a single order by id
func (s *orderService) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order does not exist")
		}

		return nil, errors.Wrap(err, "failed to get order by id")
	}

	return order, nil
}

// GetByCustomer retrieves all orders placed by the given customer
func (s *orderService) GetByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get orders by customer")
	}

	return orders, nil
}

// GetByRestaurant retrieves all orders containing food of the given restaurant
func (s *orderService) GetByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get orders by restaurant")
	}

	return orders, nil
}

// Add places a new order. The customer and every referenced food item
// are resolved against the store; any miss aborts before persisting.
func (s *orderService) Add(ctx context.Context, input *usecase.AddOrderInput) (*entity.Order, error) {
	customerID, ok := input.Customer.ResolvedID()
	if !ok {
		return nil, domainerrors.ErrMissingData.WrapMessage("customer is required")
	}
	if len(input.Foods) == 0 {
		return nil, domainerrors.ErrMissingData.WrapMessage("foods are required")
	}
	if input.Address == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("address is required")
	}
	if input.DeliveryType == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("delivery type is required")
	}

	deliveryType := entity.DeliveryType(input.DeliveryType)
	if !deliveryType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown delivery type")
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return nil, errors.Wrap(err, "failed to resolve order customer")
	}

	foods := make([]*entity.Food, 0, len(input.Foods))
	for _, ref := range input.Foods {
		foodID, ok := ref.ResolvedID()
		if !ok {
			return nil, domainerrors.ErrMissingData.WrapMessage("food id is required")
		}

		food, err := s.foodRepo.FindByID(ctx, foodID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("food does not exist")
			}

			return nil, errors.Wrap(err, "failed to resolve order food")
		}

		foods = append(foods, food)
	}

	order := &entity.Order{
		CustomerID:   customer.ID,
		Customer:     customer,
		Foods:        foods,
		Address:      input.Address,
		DeliveryType: deliveryType,
		OrderTime:    time.Now(),
		Paid:         false,
		Status:       entity.OrderStatusPending,
	}
	order.TotalAmount = sumFoodPrices(foods)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// Update applies a partial update to an existing order. Replacement
// food ids are taken as given and not resolved; the later read path
// surfaces any dangling reference.
func (s *orderService) Update(ctx context.Context, id int64, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order does not exist")
		}

		return nil, errors.Wrap(err, "failed to get order for update")
	}

	if input.Address != nil {
		order.Address = *input.Address
	}
	if input.DeliveryType != nil {
		deliveryType := entity.DeliveryType(*input.DeliveryType)
		if !deliveryType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown delivery type")
		}
		order.DeliveryType = deliveryType
	}
	if input.Status != nil {
		status := entity.OrderStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
		}
		order.Status = status
	}
	if input.Foods != nil {
		foods := make([]*entity.Food, 0, len(input.Foods))
		for _, ref := range input.Foods {
			foodID, ok := ref.ResolvedID()
			if !ok {
				return nil, domainerrors.ErrMissingData.WrapMessage("food id is required")
			}
			foods = append(foods, &entity.Food{ID: foodID})
		}
		order.Foods = foods
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	// Re-read so the food associations and the derived total reflect
	// what was actually stored.
	updated, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated order")
	}

	return updated, nil
}

func sumFoodPrices(foods []*entity.Food) float64 {
	var total float64
	for _, food := range foods {
		total += food.Price
	}

	return total
}
