package repository

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository mocks repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

// NewMockRestaurantRepository creates a mock wired to the test lifecycle.
func NewMockRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRestaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByName(ctx context.Context, name string) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByDistrict(ctx context.Context, district string) (*entity.Restaurant, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)

	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)

	return args.Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)

	return args.Error(0)
}
