package repository

import (
	"context"
	"time"

	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockReviewRepository mocks repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates a mock wired to the test lifecycle.
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByReviewTime(ctx context.Context, reviewTime time.Time) ([]*entity.Review, error) {
	args := m.Called(ctx, reviewTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)

	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}
