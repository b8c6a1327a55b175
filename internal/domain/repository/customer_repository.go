// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindAll retrieves every customer.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByEmail retrieves a single customer by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// ExistsByEmail reports whether any customer uses the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByID reports whether a customer with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create persists a new customer entity to the storage.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer entity in the storage.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer entity from the storage.
	Delete(ctx context.Context, customer *entity.Customer) error
}
