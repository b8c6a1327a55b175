package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindAll retrieves every order with its customer and food associations.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Foods").
		Find(&ordersM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(ordersM), nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Foods").
		First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByCustomer retrieves all orders placed by the given customer.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Foods").
		Where("customer_id = ?", customerID).
		Find(&ordersM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return toOrderDomains(ordersM), nil
}

// FindByRestaurant retrieves all orders containing at least one food item
// owned by the given restaurant.
func (repo *orderRepository) FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Foods").
		Joins("JOIN order_food ON order_food.order_id = orders.id").
		Joins("JOIN food ON food.id = order_food.food_id").
		Where("food.restaurant_id = ?", restaurantID).
		Distinct("orders.*").
		Find(&ordersM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by restaurant")
	}

	return toOrderDomains(ordersM), nil
}

// ExistsByID reports whether an order row with the given ID exists.
func (repo *orderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check order existence")
	}

	return count > 0, nil
}

// Create persists a new order entity and its food join rows.
// Omit("Foods.*") creates the join entries without upserting the food rows
// themselves; the food records stay authoritative.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Customer").Omit("Foods.*").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("referenced customer or food does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingData.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

// Update modifies an existing order row and replaces its food associations
// with the ones carried by the entity.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	tx := repo.db.WithContext(ctx)
	if err := tx.Omit(clause.Associations).Save(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	if err := tx.Model(orderM).Association("Foods").Replace(orderM.Foods); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("referenced food does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace order foods")
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Customer:     toCustomerDomain(data.Customer),
		Foods:        toFoodDomains(data.Foods),
		TotalAmount:  data.TotalAmount,
		Address:      data.Address,
		DeliveryType: entity.DeliveryType(data.DeliveryType),
		OrderTime:    data.OrderTime,
		Paid:         data.IsPaid,
		Status:       entity.OrderStatus(data.Status),
	}
}

func toOrderDomains(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
// Only food IDs matter for the join table; other food fields are never written back.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	foodsM := make([]*model.FoodModel, 0, len(data.Foods))
	for _, food := range data.Foods {
		foodsM = append(foodsM, fromFoodDomain(food))
	}

	return &model.OrderModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Foods:        foodsM,
		Address:      data.Address,
		DeliveryType: data.DeliveryType.String(),
		OrderTime:    data.OrderTime,
		IsPaid:       data.Paid,
		Status:       data.Status.String(),
	}
}
