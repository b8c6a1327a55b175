package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerService(t *testing.T) (usecase.CustomerUsecase, *mockRepo.MockCustomerRepository) {
	t.Helper()
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(CustomerServiceParams{CustomerRepo: customerRepo})

	return service, customerRepo
}

func TestCustomerService_Register(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	customerRepo.On("ExistsByEmail", ctx, "john.doe@example.com").Return(false, nil)
	customerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Customer).ID = 1
		}).
		Return(nil)

	customer, err := service.Register(ctx, &usecase.RegisterCustomerInput{
		Firstname:   "John",
		Lastname:    "Doe",
		Email:       "john.doe@example.com",
		Address:     "1 Main St",
		PhoneNumber: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, "John", customer.Firstname)
	assert.Equal(t, "Doe", customer.Lastname)
	assert.Equal(t, "john.doe@example.com", customer.Email)
}

func TestCustomerService_Register_MissingRequiredField(t *testing.T) {
	service, _ := newCustomerService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.RegisterCustomerInput
	}{
		{"no firstname", &usecase.RegisterCustomerInput{Lastname: "Doe", Email: "a@b"}},
		{"no lastname", &usecase.RegisterCustomerInput{Firstname: "John", Email: "a@b"}},
		{"no email", &usecase.RegisterCustomerInput{Firstname: "John", Lastname: "Doe"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(ctx, tc.input)
			assert.ErrorIs(t, err, domainerrors.ErrMissingData)
		})
	}
}

func TestCustomerService_Register_EmailTaken(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	customerRepo.On("ExistsByEmail", ctx, "john.doe@example.com").Return(true, nil)

	_, err := service.Register(ctx, &usecase.RegisterCustomerInput{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john.doe@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, int64(42)).Return(nil, repository.ErrCustomerNotFound)

	_, err := service.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCustomerService_GetByID_RepeatedReadsAgree(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	stored := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(stored, nil).Twice()

	first, err := service.GetByID(ctx, 7)
	require.NoError(t, err)
	second, err := service.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCustomerService_Update_Partial(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	stored := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)
	customerRepo.On("Update", ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

	customer, err := service.Update(ctx, 7, &usecase.UpdateCustomerInput{
		Address: strPtr("2 Side St"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2 Side St", customer.Address)
	assert.Equal(t, "John", customer.Firstname)
	assert.Equal(t, "john.doe@example.com", customer.Email)
}

func TestCustomerService_Update_NoFieldsStillPersists(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	stored := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)
	customerRepo.On("Update", ctx, stored).Return(nil)

	customer, err := service.Update(ctx, 7, &usecase.UpdateCustomerInput{})
	require.NoError(t, err)
	assert.Equal(t, stored, customer)
	customerRepo.AssertCalled(t, "Update", ctx, stored)
}

func TestCustomerService_Update_SameEmailSkipsChecks(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	stored := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)
	customerRepo.On("Update", ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

	_, err := service.Update(ctx, 7, &usecase.UpdateCustomerInput{
		Email: strPtr("john.doe@example.com"),
	})
	require.NoError(t, err)
	customerRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestCustomerService_Update_EmailTaken(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	stored := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)
	customerRepo.On("ExistsByEmail", ctx, "jane.doe@example.com").Return(true, nil)

	_, err := service.Update(ctx, 7, &usecase.UpdateCustomerInput{
		Email: strPtr("jane.doe@example.com"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	customerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCustomerService_Update_MalformedEmail(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	stored := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)
	customerRepo.On("ExistsByEmail", ctx, "not-an-email").Return(false, nil)

	_, err := service.Update(ctx, 7, &usecase.UpdateCustomerInput{
		Email: strPtr("not-an-email"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_DeleteByID(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	stored := &entity.Customer{ID: 7, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com"}
	customerRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)
	customerRepo.On("Delete", ctx, stored).Return(nil)

	require.NoError(t, service.DeleteByID(ctx, 7))
}

func TestCustomerService_DeleteByID_NotFound(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, int64(42)).Return(nil, repository.ErrCustomerNotFound)

	err := service.DeleteByID(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCustomerService_List_PropagatesStoreFailure(t *testing.T) {
	service, customerRepo := newCustomerService(t)
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	customerRepo.On("FindAll", ctx).Return(nil, storeErr)

	_, err := service.List(ctx)
	assert.ErrorIs(t, err, storeErr)
}
