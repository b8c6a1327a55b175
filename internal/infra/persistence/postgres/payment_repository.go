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

// paymentRepository implements the repository.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// FindAll retrieves every payment row.
func (repo *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var paymentsM []*model.PaymentModel
	if err := repo.db.WithContext(ctx).Find(&paymentsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentDomains(paymentsM), nil
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).First(&paymentM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// ExistsByOrderID reports whether a payment row already exists for the given order.
func (repo *paymentRepository) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PaymentModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check payment existence by order")
	}

	return count > 0, nil
}

// Create persists a new payment entity to the database.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("payment for order already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("referenced order does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID

	return nil
}

// Update modifies an existing payment entity in the database.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Save(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment")
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:          data.ID,
		OrderID:     data.OrderID,
		PaymentTime: data.PaymentTime,
		Method:      entity.PaymentMethod(data.PaymentMethod),
		Status:      entity.PaymentStatus(data.PaymentStatus),
	}
}

func toPaymentDomains(data []*model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(data))
	for _, paymentM := range data {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel for persistence.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		PaymentTime:   data.PaymentTime,
		PaymentMethod: data.Method.String(),
		PaymentStatus: data.Status.String(),
	}
}
