package persistence

import (
	"context"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSnapshotRepository implements laundry.SnapshotRepository using GORM
type GormSnapshotRepository struct {
	db *gorm.DB
}

var _ laundry.SnapshotRepository = (*GormSnapshotRepository)(nil)

// NewGormSnapshotRepository creates a new GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// FindByServiceID returns the service's snapshot rows in display order
func (r *GormSnapshotRepository) FindByServiceID(ctx context.Context, serviceID uuid.UUID) ([]laundry.PriceSnapshot, error) {
	var rows []laundry.PriceSnapshot
	if err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("category_sequence ASC, product_sequence ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByServiceID counts the service's snapshot rows
func (r *GormSnapshotRepository) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&laundry.PriceSnapshot{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
