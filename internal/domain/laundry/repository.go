package laundry

import (
	"context"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ServiceRepository defines the interface for service persistence
type ServiceRepository interface {
	// FindByID finds a service by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)

	// FindBySlug finds a service by its URL slug
	FindBySlug(ctx context.Context, slug string) (*Service, error)

	// FindByCategoryID finds the service bound to a catalog category
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) (*Service, error)

	// FindAll finds all services matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Service, error)

	// FindActive finds all active services
	FindActive(ctx context.Context) ([]Service, error)

	// ExistsByName checks if a service with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save creates or updates a service
	Save(ctx context.Context, service *Service) error

	// Delete deletes a service and, by cascade, its snapshot rows
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceSnapshots atomically swaps the service's snapshot set
	// and records the publication. Within one transaction it locks
	// the service row, deletes all existing snapshot rows, inserts
	// the new rows, and persists the updated publication flags from
	// the service aggregate. Concurrent calls for the same service
	// serialize on the row lock; on any error the prior snapshot set
	// and flags remain untouched.
	ReplaceSnapshots(ctx context.Context, service *Service, rows []PriceSnapshot) error
}

// SnapshotRepository defines read access to published snapshot rows
type SnapshotRepository interface {
	// FindByServiceID returns the service's snapshot rows ordered by
	// (category_sequence, product_sequence)
	FindByServiceID(ctx context.Context, serviceID uuid.UUID) ([]PriceSnapshot, error)

	// CountByServiceID counts the service's snapshot rows
	CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error)
}

// OrderRepository defines the interface for laundry order persistence
type OrderRepository interface {
	// FindByID finds an order with its lines
	FindByID(ctx context.Context, id uuid.UUID) (*LaundryOrder, error)

	// FindByOrderNumber finds an order by its human-readable number
	FindByOrderNumber(ctx context.Context, number string) (*LaundryOrder, error)

	// FindByPosReference finds an order created from a POS session,
	// used to make POS intake idempotent
	FindByPosReference(ctx context.Context, ref string) (*LaundryOrder, error)

	// FindAll finds orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[LaundryOrder], error)

	// FindByCustomerID finds all orders for a customer
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]LaundryOrder, error)

	// GenerateOrderNumber produces the next order number for the
	// given year, e.g. LND-2026-00042
	GenerateOrderNumber(ctx context.Context, year int) (string, error)

	// Save creates or updates an order with its lines
	Save(ctx context.Context, order *LaundryOrder) error

	// Delete deletes an order
	Delete(ctx context.Context, id uuid.UUID) error
}

// WashingTypeRepository defines the interface for washing type persistence
type WashingTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WashingType, error)
	FindAll(ctx context.Context) ([]WashingType, error)
	Save(ctx context.Context, wt *WashingType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WashingWorkRepository defines the interface for washing work persistence
type WashingWorkRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WashingWork, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]WashingWork, error)
	FindByStatus(ctx context.Context, status WorkStatus) ([]WashingWork, error)
	Save(ctx context.Context, work *WashingWork) error
	SaveAll(ctx context.Context, works []WashingWork) error
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByEmail finds a customer by email, case-insensitive
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Customer], error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PickupRepository defines the interface for pickup request persistence
type PickupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PickupRequest, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[PickupRequest], error)
	FindByStatus(ctx context.Context, status PickupStatus) ([]PickupRequest, error)
	Save(ctx context.Context, request *PickupRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactQueryRepository defines the interface for contact query persistence
type ContactQueryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContactQuery, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[ContactQuery], error)
	FindOpenByPriority(ctx context.Context, priority QueryPriority) ([]ContactQuery, error)
	Save(ctx context.Context, query *ContactQuery) error
	Delete(ctx context.Context, id uuid.UUID) error
}
