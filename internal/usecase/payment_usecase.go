package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// AddPaymentInput carries the fields for settling an order. The order
// reference is required; method defaults to OTHER when absent.
type AddPaymentInput struct {
	Order  *EntityRef `json:"order"`
	Method string     `json:"paymentMethod"`
}

// UpdatePaymentInput carries a payment update. Only the settlement
// status is mutable.
type UpdatePaymentInput struct {
	Status string `json:"paymentStatus"`
}

// PaymentUsecase defines the interface for payment workflows
type PaymentUsecase interface {
	// List retrieves all payments
	List(ctx context.Context) ([]*entity.Payment, error)

	// GetByID retrieves a single payment by id
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)

	// Add settles an existing order: the order is marked paid, then a
	// payment record is created with status IN_PROGRESS
	Add(ctx context.Context, input *AddPaymentInput) (*entity.Payment, error)

	// Update changes the settlement status of an existing payment
	Update(ctx context.Context, id int64, input *UpdatePaymentInput) (*entity.Payment, error)
}
