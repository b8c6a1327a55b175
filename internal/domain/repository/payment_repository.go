package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrPaymentNotFound is a domain-specific error returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// FindAll retrieves every payment.
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)

	// ExistsByOrderID reports whether a payment already exists for the given order.
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)

	// Create persists a new payment entity to the storage.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update modifies an existing payment entity in the storage.
	Update(ctx context.Context, payment *entity.Payment) error
}
