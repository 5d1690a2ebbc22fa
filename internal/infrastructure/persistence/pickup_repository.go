package persistence

import (
	"context"
	"errors"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPickupRepository implements laundry.PickupRepository using GORM
type GormPickupRepository struct {
	db *gorm.DB
}

var _ laundry.PickupRepository = (*GormPickupRepository)(nil)

// NewGormPickupRepository creates a new GormPickupRepository
func NewGormPickupRepository(db *gorm.DB) *GormPickupRepository {
	return &GormPickupRepository{db: db}
}

// FindByID finds a pickup request by its ID
func (r *GormPickupRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.PickupRequest, error) {
	var request laundry.PickupRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindAll finds pickup requests matching the filter with pagination
func (r *GormPickupRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.PickupRequest], error) {
	var requests []laundry.PickupRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&laundry.PickupRequest{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[laundry.PickupRequest]{}, err
	}

	query = applyOrdering(query, filter, "preferred_date", "created_at")
	if err := applyPagination(query, filter).Find(&requests).Error; err != nil {
		return shared.Paginated[laundry.PickupRequest]{}, err
	}

	page, pageSize := normalizedPage(filter)
	return shared.NewPaginated(requests, total, page, pageSize), nil
}

// FindByStatus finds all pickup requests in the given status, oldest first
func (r *GormPickupRepository) FindByStatus(ctx context.Context, status laundry.PickupStatus) ([]laundry.PickupRequest, error) {
	var requests []laundry.PickupRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a pickup request
func (r *GormPickupRepository) Save(ctx context.Context, request *laundry.PickupRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// Delete deletes a pickup request
func (r *GormPickupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&laundry.PickupRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
