package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements laundry.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

var _ laundry.CustomerRepository = (*GormCustomerRepository)(nil)

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.Customer, error) {
	var customer laundry.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByEmail finds a customer by email, case-insensitive.
// Emails are stored lowercased, so the lookup lowercases its input.
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*laundry.Customer, error) {
	var customer laundry.Customer
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll finds customers matching the filter with pagination
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.Customer], error) {
	var customers []laundry.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&laundry.Customer{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[laundry.Customer]{}, err
	}

	query = applyOrdering(query, filter, "name", "email", "created_at")
	if err := applyPagination(query, filter).Find(&customers).Error; err != nil {
		return shared.Paginated[laundry.Customer]{}, err
	}

	page, pageSize := normalizedPage(filter)
	return shared.NewPaginated(customers, total, page, pageSize), nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *laundry.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete deletes a customer
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&laundry.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
