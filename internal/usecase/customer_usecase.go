package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// RegisterCustomerInput carries the fields for registering a new customer.
type RegisterCustomerInput struct {
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateCustomerInput carries a partial customer update. Nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	Firstname   *string `json:"firstname"`
	Lastname    *string `json:"lastname"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}

// CustomerUsecase defines the interface for customer account workflows
type CustomerUsecase interface {
	// List retrieves all registered customers
	List(ctx context.Context) ([]*entity.Customer, error)

	// GetByID retrieves a single customer by id
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)

	// GetByEmail retrieves a single customer by email address
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Register creates a new customer account
	Register(ctx context.Context, input *RegisterCustomerInput) (*entity.Customer, error)

	// Update applies a partial update to an existing customer
	Update(ctx context.Context, id int64, input *UpdateCustomerInput) (*entity.Customer, error)

	// DeleteByID removes an existing customer
	DeleteByID(ctx context.Context, id int64) error
}
