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

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// FindAll retrieves every restaurant row.
func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantsM []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).Find(&restaurantsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return toRestaurantDomains(restaurantsM), nil
}

// FindByID retrieves a single restaurant by its unique ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).First(&restaurantM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindByName retrieves all restaurants with the given name.
func (repo *restaurantRepository) FindByName(ctx context.Context, name string) ([]*entity.Restaurant, error) {
	var restaurantsM []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).Find(&restaurantsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by name")
	}

	return toRestaurantDomains(restaurantsM), nil
}

// FindByDistrict retrieves the restaurant registered in the given district.
func (repo *restaurantRepository) FindByDistrict(ctx context.Context, district string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).Where("district = ?", district).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by district")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// ExistsByID reports whether a restaurant row with the given ID exists.
func (repo *restaurantRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check restaurant existence")
	}

	return count > 0, nil
}

// Create persists a new restaurant entity to the database.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingData.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID

	return nil
}

// Update modifies an existing restaurant entity in the database.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Save(restaurantM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update restaurant")
	}

	return nil
}

// Delete removes a restaurant entity from the database.
func (repo *restaurantRepository) Delete(ctx context.Context, restaurant *entity.Restaurant) error {
	if err := repo.db.WithContext(ctx).Delete(&model.RestaurantModel{}, restaurant.ID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete restaurant")
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		District:    data.District,
		PhoneNumber: data.PhoneNumber,
	}
}

func toRestaurantDomains(data []*model.RestaurantModel) []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, len(data))
	for _, restaurantM := range data {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel for persistence.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		District:    data.District,
		PhoneNumber: data.PhoneNumber,
	}
}
