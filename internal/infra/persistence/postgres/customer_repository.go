package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a repository.CustomerRepository interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindAll retrieves every customer row.
func (repo *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var customersM []*model.CustomerModel
	if err := repo.db.WithContext(ctx).Find(&customersM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return toCustomerDomains(customersM), nil
}

// FindByID retrieves a single customer by their unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).First(&customerM, id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByEmail retrieves a single customer by their email address.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// ExistsByEmail reports whether any customer row uses the given email.
func (repo *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check customer email existence")
	}

	return count > 0, nil
}

// ExistsByID reports whether a customer row with the given ID exists.
func (repo *customerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check customer existence")
	}

	return count > 0, nil
}

// Create persists a new customer entity to the database.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingData.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Propagate the generated ID back to the caller's entity.
	customer.ID = customerM.ID

	return nil
}

// Update modifies an existing customer entity in the database.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Save(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}

	return nil
}

// Delete removes a customer entity from the database.
func (repo *customerRepository) Delete(ctx context.Context, customer *entity.Customer) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CustomerModel{}, customer.ID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer")
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:          data.ID,
		Firstname:   data.Firstname,
		Lastname:    data.Lastname,
		Email:       data.Email,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
	}
}

func toCustomerDomains(data []*model.CustomerModel) []*entity.Customer {
	customers := make([]*entity.Customer, 0, len(data))
	for _, customerM := range data {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel for persistence.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:          data.ID,
		Firstname:   data.Firstname,
		Lastname:    data.Lastname,
		Email:       data.Email,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
	}
}
