package persistence

import (
	"context"
	"errors"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceRepository implements laundry.ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

var _ laundry.ServiceRepository = (*GormServiceRepository)(nil)

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID finds a service by its ID with features and benefits
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.Service, error) {
	var service laundry.Service
	if err := r.db.WithContext(ctx).
		Preload("Features").
		Preload("Benefits").
		First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindBySlug finds a service by its URL slug
func (r *GormServiceRepository) FindBySlug(ctx context.Context, slug string) (*laundry.Service, error) {
	var service laundry.Service
	if err := r.db.WithContext(ctx).
		Preload("Features").
		Preload("Benefits").
		Where("slug = ?", slug).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindByCategoryID finds the service bound to a catalog category
func (r *GormServiceRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) (*laundry.Service, error) {
	var service laundry.Service
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindAll finds all services matching the filter
func (r *GormServiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]laundry.Service, error) {
	var services []laundry.Service
	query := r.db.WithContext(ctx).Model(&laundry.Service{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}
	if published, ok := filter.Filters["pricing_published"]; ok {
		query = query.Where("pricing_published = ?", published)
	}
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// FindActive finds all active services
func (r *GormServiceRepository) FindActive(ctx context.Context) ([]laundry.Service, error) {
	var services []laundry.Service
	if err := r.db.WithContext(ctx).
		Preload("Features").
		Preload("Benefits").
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ExistsByName checks if a service with the given name exists
func (r *GormServiceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&laundry.Service{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a service with its features and benefits
func (r *GormServiceRepository) Save(ctx context.Context, service *laundry.Service) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(service).Error
}

// Delete deletes a service and its snapshot rows
func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&laundry.PriceSnapshot{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&laundry.Service{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ReplaceSnapshots atomically swaps the service's snapshot rows and
// persists the publication flags. The service row is locked for the
// duration of the transaction so concurrent publishes of the same
// service serialize instead of interleaving deletes and inserts.
func (r *GormServiceRepository) ReplaceSnapshots(ctx context.Context, service *laundry.Service, rows []laundry.PriceSnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lookup := tx
		// SQLite has no row locks; its transactions serialize writers anyway
		if tx.Dialector.Name() == "postgres" {
			lookup = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var locked laundry.Service
		if err := lookup.First(&locked, "id = ?", service.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Where("service_id = ?", service.ID).
			Delete(&laundry.PriceSnapshot{}).Error; err != nil {
			return err
		}

		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
		}

		return tx.Model(&laundry.Service{}).
			Where("id = ?", service.ID).
			Updates(map[string]interface{}{
				"pricing_published":    service.PricingPublished,
				"pricing_last_updated": service.PricingLastUpdated,
				"updated_at":           service.UpdatedAt,
			}).Error
	})
}
