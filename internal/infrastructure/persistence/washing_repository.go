package persistence

import (
	"context"
	"errors"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWashingTypeRepository implements laundry.WashingTypeRepository
// using GORM
type GormWashingTypeRepository struct {
	db *gorm.DB
}

var _ laundry.WashingTypeRepository = (*GormWashingTypeRepository)(nil)

// NewGormWashingTypeRepository creates a new GormWashingTypeRepository
func NewGormWashingTypeRepository(db *gorm.DB) *GormWashingTypeRepository {
	return &GormWashingTypeRepository{db: db}
}

// FindByID finds a washing type by its ID
func (r *GormWashingTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.WashingType, error) {
	var wt laundry.WashingType
	if err := r.db.WithContext(ctx).First(&wt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &wt, nil
}

// FindAll finds all washing types ordered by name
func (r *GormWashingTypeRepository) FindAll(ctx context.Context) ([]laundry.WashingType, error) {
	var types []laundry.WashingType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Save creates or updates a washing type
func (r *GormWashingTypeRepository) Save(ctx context.Context, wt *laundry.WashingType) error {
	return r.db.WithContext(ctx).Save(wt).Error
}

// Delete deletes a washing type
func (r *GormWashingTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&laundry.WashingType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormWashingWorkRepository implements laundry.WashingWorkRepository
// using GORM
type GormWashingWorkRepository struct {
	db *gorm.DB
}

var _ laundry.WashingWorkRepository = (*GormWashingWorkRepository)(nil)

// NewGormWashingWorkRepository creates a new GormWashingWorkRepository
func NewGormWashingWorkRepository(db *gorm.DB) *GormWashingWorkRepository {
	return &GormWashingWorkRepository{db: db}
}

// FindByID finds a washing work item by its ID
func (r *GormWashingWorkRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.WashingWork, error) {
	var work laundry.WashingWork
	if err := r.db.WithContext(ctx).First(&work, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &work, nil
}

// FindByOrderID finds all work items for an order
func (r *GormWashingWorkRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]laundry.WashingWork, error) {
	var works []laundry.WashingWork
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

// FindByStatus finds all work items in the given status, oldest first
func (r *GormWashingWorkRepository) FindByStatus(ctx context.Context, status laundry.WorkStatus) ([]laundry.WashingWork, error) {
	var works []laundry.WashingWork
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

// Save creates or updates a work item
func (r *GormWashingWorkRepository) Save(ctx context.Context, work *laundry.WashingWork) error {
	return r.db.WithContext(ctx).Save(work).Error
}

// SaveAll creates or updates a batch of work items in one transaction
func (r *GormWashingWorkRepository) SaveAll(ctx context.Context, works []laundry.WashingWork) error {
	if len(works) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range works {
			if err := tx.Save(&works[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
