package persistence

import (
	"context"
	"errors"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContactQueryRepository implements laundry.ContactQueryRepository
// using GORM
type GormContactQueryRepository struct {
	db *gorm.DB
}

var _ laundry.ContactQueryRepository = (*GormContactQueryRepository)(nil)

// NewGormContactQueryRepository creates a new GormContactQueryRepository
func NewGormContactQueryRepository(db *gorm.DB) *GormContactQueryRepository {
	return &GormContactQueryRepository{db: db}
}

// FindByID finds a contact query by its ID
func (r *GormContactQueryRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.ContactQuery, error) {
	var query laundry.ContactQuery
	if err := r.db.WithContext(ctx).First(&query, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &query, nil
}

// FindAll finds contact queries matching the filter with pagination
func (r *GormContactQueryRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.ContactQuery], error) {
	var queries []laundry.ContactQuery
	var total int64

	q := r.db.WithContext(ctx).Model(&laundry.ContactQuery{})
	if status, ok := filter.Filters["status"]; ok {
		q = q.Where("status = ?", status)
	}
	if priority, ok := filter.Filters["priority"]; ok {
		q = q.Where("priority = ?", priority)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ?", pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return shared.Paginated[laundry.ContactQuery]{}, err
	}

	q = applyOrdering(q, filter, "priority", "status", "created_at")
	if err := applyPagination(q, filter).Find(&queries).Error; err != nil {
		return shared.Paginated[laundry.ContactQuery]{}, err
	}

	page, pageSize := normalizedPage(filter)
	return shared.NewPaginated(queries, total, page, pageSize), nil
}

// FindOpenByPriority finds unresolved queries at the given priority,
// oldest first
func (r *GormContactQueryRepository) FindOpenByPriority(ctx context.Context, priority laundry.QueryPriority) ([]laundry.ContactQuery, error) {
	var queries []laundry.ContactQuery
	if err := r.db.WithContext(ctx).
		Where("priority = ? AND status IN ?", priority,
			[]laundry.QueryStatus{laundry.QueryStatusNew, laundry.QueryStatusInProgress}).
		Order("created_at ASC").
		Find(&queries).Error; err != nil {
		return nil, err
	}
	return queries, nil
}

// Save creates or updates a contact query
func (r *GormContactQueryRepository) Save(ctx context.Context, query *laundry.ContactQuery) error {
	return r.db.WithContext(ctx).Save(query).Error
}

// Delete deletes a contact query
func (r *GormContactQueryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&laundry.ContactQuery{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
