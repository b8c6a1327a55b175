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

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *mockRepo.MockPaymentRepository, *mockRepo.MockOrderRepository) {
	t.Helper()
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewPaymentService(PaymentServiceParams{
		PaymentRepo: paymentRepo,
		OrderRepo:   orderRepo,
	})

	return service, paymentRepo, orderRepo
}

func TestPaymentService_Add(t *testing.T) {
	service, paymentRepo, orderRepo := newPaymentService(t)
	ctx := context.Background()

	order := &entity.Order{ID: 21, Status: entity.OrderStatusPending, Paid: false, DeliveryType: entity.DeliveryTypePickup}
	orderRepo.On("FindByID", ctx, int64(21)).Return(order, nil)
	paymentRepo.On("ExistsByOrderID", ctx, int64(21)).Return(false, nil)
	orderRepo.On("Update", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.ID == 21 && o.Paid
	})).Return(nil)
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Payment).ID = 31
		}).
		Return(nil)

	before := time.Now()
	payment, err := service.Add(ctx, &usecase.AddPaymentInput{
		Order:  refTo(21),
		Method: "BLIK",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), payment.ID)
	assert.Equal(t, int64(21), payment.OrderID)
	assert.Equal(t, entity.PaymentMethodBlik, payment.Method)
	assert.Equal(t, entity.PaymentStatusInProgress, payment.Status)
	assert.False(t, payment.PaymentTime.Before(before))
}

func TestPaymentService_Add_SecondPaymentRejected(t *testing.T) {
	service, paymentRepo, orderRepo := newPaymentService(t)
	ctx := context.Background()

	order := &entity.Order{ID: 21, Paid: true}
	orderRepo.On("FindByID", ctx, int64(21)).Return(order, nil)
	paymentRepo.On("ExistsByOrderID", ctx, int64(21)).Return(true, nil)

	_, err := service.Add(ctx, &usecase.AddPaymentInput{Order: refTo(21)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPaymentService_Add_OrderMissing(t *testing.T) {
	service, paymentRepo, orderRepo := newPaymentService(t)
	ctx := context.Background()

	orderRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrOrderNotFound)

	_, err := service.Add(ctx, &usecase.AddPaymentInput{Order: refTo(99)})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_Add_NoOrderRef(t *testing.T) {
	service, _, _ := newPaymentService(t)
	ctx := context.Background()

	_, err := service.Add(ctx, &usecase.AddPaymentInput{})
	assert.ErrorIs(t, err, domainerrors.ErrMissingData)
}

func TestPaymentService_Add_UnknownMethod(t *testing.T) {
	service, _, _ := newPaymentService(t)
	ctx := context.Background()

	_, err := service.Add(ctx, &usecase.AddPaymentInput{Order: refTo(21), Method: "BARTER"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_Add_DefaultsMethodToOther(t *testing.T) {
	service, paymentRepo, orderRepo := newPaymentService(t)
	ctx := context.Background()

	order := &entity.Order{ID: 21, DeliveryType: entity.DeliveryTypePickup, Status: entity.OrderStatusPending}
	orderRepo.On("FindByID", ctx, int64(21)).Return(order, nil)
	paymentRepo.On("ExistsByOrderID", ctx, int64(21)).Return(false, nil)
	orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	payment, err := service.Add(ctx, &usecase.AddPaymentInput{Order: refTo(21)})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodOther, payment.Method)
}

func TestPaymentService_Update_Status(t *testing.T) {
	service, paymentRepo, _ := newPaymentService(t)
	ctx := context.Background()

	stored := &entity.Payment{ID: 31, OrderID: 21, Method: entity.PaymentMethodBlik, Status: entity.PaymentStatusInProgress}
	paymentRepo.On("FindByID", ctx, int64(31)).Return(stored, nil)
	paymentRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Status == entity.PaymentStatusPaid
	})).Return(nil)

	payment, err := service.Update(ctx, 31, &usecase.UpdatePaymentInput{Status: "PAID"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, payment.Status)
	assert.Equal(t, entity.PaymentMethodBlik, payment.Method)
}

func TestPaymentService_Update_UnknownStatus(t *testing.T) {
	service, paymentRepo, _ := newPaymentService(t)
	ctx := context.Background()

	stored := &entity.Payment{ID: 31, Status: entity.PaymentStatusInProgress}
	paymentRepo.On("FindByID", ctx, int64(31)).Return(stored, nil)

	_, err := service.Update(ctx, 31, &usecase.UpdatePaymentInput{Status: "REFUNDED"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPaymentService_GetByID_NotFound(t *testing.T) {
	service, paymentRepo, _ := newPaymentService(t)
	ctx := context.Background()

	paymentRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrPaymentNotFound)

	_, err := service.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
