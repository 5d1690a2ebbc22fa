package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feedygotech/laundry-backend/internal/application/pricing"
	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*laundry.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.Service), args.Error(1)
}

func (m *mockServiceRepo) FindBySlug(ctx context.Context, slug string) (*laundry.Service, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.Service), args.Error(1)
}

func (m *mockServiceRepo) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) (*laundry.Service, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*laundry.Service), args.Error(1)
}

func (m *mockServiceRepo) FindAll(ctx context.Context, filter shared.Filter) ([]laundry.Service, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]laundry.Service), args.Error(1)
}

func (m *mockServiceRepo) FindActive(ctx context.Context) ([]laundry.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]laundry.Service), args.Error(1)
}

func (m *mockServiceRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockServiceRepo) Save(ctx context.Context, service *laundry.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *mockServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockServiceRepo) ReplaceSnapshots(ctx context.Context, service *laundry.Service, rows []laundry.PriceSnapshot) error {
	args := m.Called(ctx, service, rows)
	return args.Error(0)
}

type mockSnapshotRepo struct{ mock.Mock }

func (m *mockSnapshotRepo) FindByServiceID(ctx context.Context, serviceID uuid.UUID) ([]laundry.PriceSnapshot, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).([]laundry.PriceSnapshot), args.Error(1)
}

func (m *mockSnapshotRepo) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindTopLevel(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type pricingRouterFixture struct {
	serviceRepo  *mockServiceRepo
	snapshotRepo *mockSnapshotRepo
	categoryRepo *mockCategoryRepo
	productRepo  *mockProductRepo
	engine       *gin.Engine
}

func newPricingRouterFixture() *pricingRouterFixture {
	gin.SetMode(gin.TestMode)

	f := &pricingRouterFixture{
		serviceRepo:  &mockServiceRepo{},
		snapshotRepo: &mockSnapshotRepo{},
		categoryRepo: &mockCategoryRepo{},
		productRepo:  &mockProductRepo{},
	}
	logger := zap.NewNop()
	publisher := pricing.NewPublisher(f.serviceRepo, f.snapshotRepo, f.categoryRepo, f.productRepo, nil, logger)
	presenter := pricing.NewPresenter(f.serviceRepo, f.snapshotRepo, f.categoryRepo, f.productRepo, nil, logger)
	h := NewPricingHandler(publisher, presenter)

	f.engine = gin.New()
	f.engine.GET("/pricing/services/:slug", h.CustomerPriceList)
	f.engine.POST("/services/:id/pricing/publish", h.Publish)
	f.engine.POST("/services/:id/pricing/unpublish", h.Unpublish)
	return f
}

func (f *pricingRouterFixture) do(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	f.engine.ServeHTTP(w, req)
	return w
}

func newPublishableService(t *testing.T) *laundry.Service {
	t.Helper()
	service, err := laundry.NewService("Dry Cleaning", uuid.New())
	require.NoError(t, err)
	return service
}

func TestPricingHandler_Publish(t *testing.T) {
	t.Run("returns the publish result envelope", func(t *testing.T) {
		f := newPricingRouterFixture()
		service := newPublishableService(t)

		child, err := catalog.NewCategory("Shirts")
		require.NoError(t, err)
		product, err := catalog.NewProduct("Cotton Shirt", &child.ID, decimal.RequireFromString("5.00"))
		require.NoError(t, err)

		f.serviceRepo.On("FindByID", mock.Anything, service.ID).Return(service, nil)
		f.snapshotRepo.On("FindByServiceID", mock.Anything, service.ID).Return([]laundry.PriceSnapshot{}, nil)
		f.categoryRepo.On("FindChildren", mock.Anything, service.CategoryID).Return([]catalog.Category{*child}, nil)
		f.productRepo.On("FindActiveByCategory", mock.Anything, child.ID).Return([]catalog.Product{*product}, nil)
		f.serviceRepo.On("ReplaceSnapshots", mock.Anything, service, mock.Anything).Return(nil)

		w := f.do(http.MethodPost, "/services/"+service.ID.String()+"/pricing/publish")

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool                   `json:"success"`
			Data    map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, float64(1), body.Data["row_count"])
	})

	t.Run("unknown service maps to 404", func(t *testing.T) {
		f := newPricingRouterFixture()
		id := uuid.New()
		f.serviceRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := f.do(http.MethodPost, "/services/"+id.String()+"/pricing/publish")

		require.Equal(t, http.StatusNotFound, w.Code)
		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "ERR_NOT_FOUND", body.Error.Code)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		f := newPricingRouterFixture()

		w := f.do(http.MethodPost, "/services/not-a-uuid/pricing/publish")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.serviceRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestPricingHandler_CustomerPriceList(t *testing.T) {
	f := newPricingRouterFixture()
	service := newPublishableService(t)
	service.MarkPublished(service.CreatedAt)

	row := laundry.NewPriceSnapshot(
		service.ID, uuid.New(), "Shirts", 10,
		uuid.New(), "Cotton Shirt", decimal.RequireFromString("5.00"), 10,
		service.CreatedAt,
	)
	product, err := catalog.NewProduct("Cotton Shirt", &row.CategoryID, decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	product.ID = row.ProductID

	f.serviceRepo.On("FindBySlug", mock.Anything, "dry-cleaning").Return(service, nil)
	f.serviceRepo.On("FindByID", mock.Anything, service.ID).Return(service, nil)
	f.snapshotRepo.On("FindByServiceID", mock.Anything, service.ID).Return([]laundry.PriceSnapshot{*row}, nil)
	f.productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{*product}, nil)

	w := f.do(http.MethodGet, "/pricing/services/dry-cleaning")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data pricing.ServiceDisplay `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Categories, 1)
	require.Len(t, body.Data.Categories[0].Products, 1)
	item := body.Data.Categories[0].Products[0]
	assert.Equal(t, "5.00", item.Price)
	assert.Empty(t, item.PublishedPrice)
	assert.Empty(t, item.ChangeStatus)
}
