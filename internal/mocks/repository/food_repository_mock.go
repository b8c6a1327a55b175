package repository

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFoodRepository mocks repository.FoodRepository.
type MockFoodRepository struct {
	mock.Mock
}

// NewMockFoodRepository creates a mock wired to the test lifecycle.
func NewMockFoodRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodRepository {
	m := &MockFoodRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]*entity.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id int64) (*entity.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Food, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Food, error) {
	args := m.Called(ctx, minPrice, maxPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Food, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByName(ctx context.Context, name string) ([]*entity.Food, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Food), args.Error(1)
}

func (m *MockFoodRepository) FindVegetarian(ctx context.Context) ([]*entity.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Food), args.Error(1)
}

func (m *MockFoodRepository) Create(ctx context.Context, food *entity.Food) error {
	args := m.Called(ctx, food)

	return args.Error(0)
}

func (m *MockFoodRepository) Update(ctx context.Context, food *entity.Food) error {
	args := m.Called(ctx, food)

	return args.Error(0)
}

func (m *MockFoodRepository) Delete(ctx context.Context, food *entity.Food) error {
	args := m.Called(ctx, food)

	return args.Error(0)
}
