// Package impl contains the workflow implementations behind the usecase
// interfaces. All cross-entity invariants are enforced here, before any
// mutation reaches the store.
package impl

import (
	"context"
	"regexp"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emailPattern is intentionally loose: anything before the @, no
// whitespace after it.
var emailPattern = regexp.MustCompile(`^(.+)@(\S+)$`)

type customerService struct {
	customerRepo repository.CustomerRepository
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
	}
}

// List retrieves all registered customers
func (s *customerService) List(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// GetByID retrieves a single customer by id
func (s *customerService) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return nil, errors.Wrap(err, "failed to get customer by id")
	}

	return customer, nil
}

// GetByEmail retrieves a single customer by email address
func (s *customerService) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return nil, errors.Wrap(err, "failed to get customer by email")
	}

	return customer, nil
}

// Register creates a new customer account
func (s *customerService) Register(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	if input.Firstname == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("firstname is required")
	}
	if input.Lastname == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("lastname is required")
	}
	if input.Email == "" {
		return nil, domainerrors.ErrMissingData.WrapMessage("email is required")
	}

	taken, err := s.customerRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email availability")
	}
	if taken {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	}

	customer := &entity.Customer{
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Email:       input.Email,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// Update applies a partial update to an existing customer. A changed
// email must be unused and well-formed; an email equal to the current
// one is left alone without any check.
func (s *customerService) Update(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return nil, errors.Wrap(err, "failed to get customer for update")
	}

	if input.Firstname != nil {
		customer.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		customer.Lastname = *input.Lastname
	}
	if input.Email != nil && *input.Email != customer.Email {
		taken, err := s.customerRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check email availability")
		}
		if taken {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}
		if !emailPattern.MatchString(*input.Email) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("email format is invalid")
		}
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		customer.PhoneNumber = *input.PhoneNumber
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteByID removes an existing customer
func (s *customerService) DeleteByID(ctx context.Context, id int64) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return errors.Wrap(err, "failed to get customer for delete")
	}

	return s.customerRepo.Delete(ctx, customer)
}
