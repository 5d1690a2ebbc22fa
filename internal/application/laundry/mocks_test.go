package laundry

import (
	"context"

	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of laundry.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.LaundryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.LaundryOrder), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, number string) (*laundry.LaundryOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.LaundryOrder), args.Error(1)
}

func (m *MockOrderRepository) FindByPosReference(ctx context.Context, ref string) (*laundry.LaundryOrder, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.LaundryOrder), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.LaundryOrder], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[laundry.LaundryOrder]), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]laundry.LaundryOrder, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]laundry.LaundryOrder), args.Error(1)
}

func (m *MockOrderRepository) GenerateOrderNumber(ctx context.Context, year int) (string, error) {
	args := m.Called(ctx, year)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *laundry.LaundryOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of laundry.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*laundry.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.Customer], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[laundry.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *laundry.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWashingWorkRepository is a mock implementation of laundry.WashingWorkRepository
type MockWashingWorkRepository struct {
	mock.Mock
}

func (m *MockWashingWorkRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.WashingWork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.WashingWork), args.Error(1)
}

func (m *MockWashingWorkRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]laundry.WashingWork, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]laundry.WashingWork), args.Error(1)
}

func (m *MockWashingWorkRepository) FindByStatus(ctx context.Context, status laundry.WorkStatus) ([]laundry.WashingWork, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]laundry.WashingWork), args.Error(1)
}

func (m *MockWashingWorkRepository) Save(ctx context.Context, work *laundry.WashingWork) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *MockWashingWorkRepository) SaveAll(ctx context.Context, works []laundry.WashingWork) error {
	args := m.Called(ctx, works)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPickupRepository is a mock implementation of laundry.PickupRepository
type MockPickupRepository struct {
	mock.Mock
}

func (m *MockPickupRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.PickupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.PickupRequest), args.Error(1)
}

func (m *MockPickupRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.PickupRequest], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[laundry.PickupRequest]), args.Error(1)
}

func (m *MockPickupRepository) FindByStatus(ctx context.Context, status laundry.PickupStatus) ([]laundry.PickupRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]laundry.PickupRequest), args.Error(1)
}

func (m *MockPickupRepository) Save(ctx context.Context, request *laundry.PickupRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockPickupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactQueryRepository is a mock implementation of laundry.ContactQueryRepository
type MockContactQueryRepository struct {
	mock.Mock
}

func (m *MockContactQueryRepository) FindByID(ctx context.Context, id uuid.UUID) (*laundry.ContactQuery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.ContactQuery), args.Error(1)
}

func (m *MockContactQueryRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[laundry.ContactQuery], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[laundry.ContactQuery]), args.Error(1)
}

func (m *MockContactQueryRepository) FindOpenByPriority(ctx context.Context, priority laundry.QueryPriority) ([]laundry.ContactQuery, error) {
	args := m.Called(ctx, priority)
	return args.Get(0).([]laundry.ContactQuery), args.Error(1)
}

func (m *MockContactQueryRepository) Save(ctx context.Context, query *laundry.ContactQuery) error {
	args := m.Called(ctx, query)
	return args.Error(0)
}

func (m *MockContactQueryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMailer is a mock implementation of Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPickupAcknowledgement(request *laundry.PickupRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockMailer) SendQueryReceived(query *laundry.ContactQuery) error {
	args := m.Called(query)
	return args.Error(0)
}

func (m *MockMailer) SendQueryResponse(query *laundry.ContactQuery) error {
	args := m.Called(query)
	return args.Error(0)
}

func (m *MockMailer) SendPendingChangesDigest(to string, services []PendingDigestEntry) error {
	args := m.Called(to, services)
	return args.Error(0)
}
