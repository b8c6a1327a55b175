package repository

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository mocks repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates a mock wired to the test lifecycle.
func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)

	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}
