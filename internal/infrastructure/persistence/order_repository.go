package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements laundry.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

var _ laundry.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its lines
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.LaundryOrder, error) {
	var order laundry.LaundryOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByOrderNumber finds an order by its human-readable number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, number string) (*laundry.LaundryOrder, error) {
	var order laundry.LaundryOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("order_number = ?", number).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByPosReference finds an order created from a POS session
func (r *GormOrderRepository) FindByPosReference(ctx context.Context, ref string) (*laundry.LaundryOrder, error) {
	var order laundry.LaundryOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("pos_reference = ?", ref).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds orders matching the filter with pagination
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.LaundryOrder], error) {
	var orders []laundry.LaundryOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&laundry.LaundryOrder{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if customerID, ok := filter.Filters["customer_id"]; ok {
		query = query.Where("customer_id = ?", customerID)
	}
	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[laundry.LaundryOrder]{}, err
	}

	query = applyOrdering(query, filter, "order_number", "order_date", "created_at")
	if err := applyPagination(query, filter).
		Preload("Lines").
		Find(&orders).Error; err != nil {
		return shared.Paginated[laundry.LaundryOrder]{}, err
	}

	page, pageSize := normalizedPage(filter)
	return shared.NewPaginated(orders, total, page, pageSize), nil
}

// FindByCustomerID finds all orders for a customer, newest first
func (r *GormOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]laundry.LaundryOrder, error) {
	var orders []laundry.LaundryOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GenerateOrderNumber produces the next order number for the given year
// in the form LND-YYYY-NNNNN
func (r *GormOrderRepository) GenerateOrderNumber(ctx context.Context, year int) (string, error) {
	prefix := fmt.Sprintf("LND-%d-", year)

	var lastOrder laundry.LaundryOrder
	err := r.db.WithContext(ctx).
		Where("order_number LIKE ?", prefix+"%").
		Order("order_number DESC").
		First(&lastOrder).Error

	nextNum := 1
	if err == nil {
		parts := strings.Split(lastOrder.OrderNumber, "-")
		if len(parts) == 3 {
			var lastNum int
			if _, scanErr := fmt.Sscanf(parts[2], "%d", &lastNum); scanErr == nil {
				nextNum = lastNum + 1
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return fmt.Sprintf("%s%05d", prefix, nextNum), nil
}

// Save creates or updates an order with its lines
func (r *GormOrderRepository) Save(ctx context.Context, order *laundry.LaundryOrder) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(order).Error
}

// Delete deletes an order and its lines
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&laundry.OrderLine{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&laundry.LaundryOrder{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
