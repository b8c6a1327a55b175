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

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	OrderRepo   repository.OrderRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		orderRepo:   params.OrderRepo,
	}
}

// List retrieves all payments
func (s *paymentService) List(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// GetByID retrieves a single payment by id
func (s *paymentService) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("payment does not exist")
		}

		return nil, errors.Wrap(err, "failed to get payment by id")
	}

	return payment, nil
}

// Add settles an existing order. The order is marked paid and persisted
// first, then the payment record is inserted; the two writes are not
// atomic.
func (s *paymentService) Add(ctx context.Context, input *usecase.AddPaymentInput) (*entity.Payment, error) {
	orderID, ok := input.Order.ResolvedID()
	if !ok {
		return nil, domainerrors.ErrMissingData.WrapMessage("order is required")
	}

	method := entity.PaymentMethodOther
	if input.Method != "" {
		method = entity.PaymentMethod(input.Method)
		if !method.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
		}
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order does not exist")
		}

		return nil, errors.Wrap(err, "failed to resolve payment order")
	}

	exists, err := s.paymentRepo.ExistsByOrderID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check payment existence")
	}
	if exists {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment for order already exists")
	}

	order.Paid = true
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		OrderID:     order.ID,
		PaymentTime: time.Now(),
		Method:      method,
		Status:      entity.PaymentStatusInProgress,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// Update changes the settlement status of an existing payment
func (s *paymentService) Update(ctx context.Context, id int64, input *usecase.UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("payment does not exist")
		}

		return nil, errors.Wrap(err, "failed to get payment for update")
	}

	if input.Status == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("payment status is required")
	}

	status := entity.PaymentStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment status")
	}
	payment.Status = status

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}
