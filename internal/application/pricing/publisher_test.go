package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type publisherFixture struct {
	serviceRepo  *MockServiceRepository
	snapshotRepo *MockSnapshotRepository
	categoryRepo *MockCategoryRepository
	productRepo  *MockProductRepository
	cache        *MockPriceListCache
	publisher    *Publisher
}

func newPublisherFixture() *publisherFixture {
	f := &publisherFixture{
		serviceRepo:  new(MockServiceRepository),
		snapshotRepo: new(MockSnapshotRepository),
		categoryRepo: new(MockCategoryRepository),
		productRepo:  new(MockProductRepository),
		cache:        new(MockPriceListCache),
	}
	f.publisher = NewPublisher(f.serviceRepo, f.snapshotRepo, f.categoryRepo, f.productRepo, f.cache, zap.NewNop())
	return f
}

func newTestService(t *testing.T) *laundry.Service {
	t.Helper()
	s, err := laundry.NewService("Dry Cleaning", uuid.New())
	require.NoError(t, err)
	return s
}

func newTestCategory(t *testing.T, name string) *catalog.Category {
	t.Helper()
	c, err := catalog.NewCategory(name)
	require.NoError(t, err)
	return c
}

func newTestProduct(t *testing.T, name string, price float64, categoryID uuid.UUID) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, &categoryID, decimal.NewFromFloat(price))
	require.NoError(t, err)
	return p
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("first publish freezes the live tree with step-10 sequences", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)

		washing := newTestCategory(t, "Washing")
		ironing := newTestCategory(t, "Ironing")
		shirt := newTestProduct(t, "Shirt", 5.00, washing.ID)
		jacket := newTestProduct(t, "Jacket", 12.00, washing.ID)
		suit := newTestProduct(t, "Suit", 20.00, ironing.ID)

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.snapshotRepo.On("FindByServiceID", ctx, service.ID).Return([]laundry.PriceSnapshot{}, nil)
		f.categoryRepo.On("FindChildren", ctx, service.CategoryID).Return([]catalog.Category{*washing, *ironing}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, washing.ID).Return([]catalog.Product{*shirt, *jacket}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, ironing.ID).Return([]catalog.Product{*suit}, nil)
		f.cache.On("Invalidate", ctx, service.ID).Return(nil)

		var saved []laundry.PriceSnapshot
		f.serviceRepo.On("ReplaceSnapshots", ctx, service, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(2).([]laundry.PriceSnapshot)
		}).Return(nil)

		result, err := f.publisher.Publish(ctx, service.ID)

		require.NoError(t, err)
		assert.Equal(t, 3, result.RowCount)
		assert.Equal(t, 0, result.Replaced.Total)
		assert.True(t, service.PricingPublished)

		require.Len(t, saved, 3)
		assert.Equal(t, 10, saved[0].CategorySequence)
		assert.Equal(t, 10, saved[0].ProductSequence)
		assert.Equal(t, "Shirt", saved[0].ProductName)
		assert.Equal(t, 10, saved[1].CategorySequence)
		assert.Equal(t, 20, saved[1].ProductSequence)
		assert.Equal(t, 20, saved[2].CategorySequence)
		assert.Equal(t, 10, saved[2].ProductSequence)
		assert.Equal(t, "Ironing", saved[2].CategoryName)

		f.cache.AssertCalled(t, "Invalidate", ctx, service.ID)
	})

	t.Run("replaced summary counts drift in the old set", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)
		service.MarkPublished(time.Now().Add(-24 * time.Hour))

		washing := newTestCategory(t, "Washing")
		shirt := newTestProduct(t, "Shirt Premium", 6.00, washing.ID)

		oldRows := []laundry.PriceSnapshot{
			*laundry.NewPriceSnapshot(service.ID, washing.ID, "Washing", 10,
				shirt.ID, "Shirt", decimal.NewFromFloat(5.00), 10, time.Now().Add(-24*time.Hour)),
		}

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.snapshotRepo.On("FindByServiceID", ctx, service.ID).Return(oldRows, nil)
		f.productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*shirt}, nil)
		f.categoryRepo.On("FindChildren", ctx, service.CategoryID).Return([]catalog.Category{*washing}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, washing.ID).Return([]catalog.Product{*shirt}, nil)
		f.serviceRepo.On("ReplaceSnapshots", ctx, service, mock.Anything).Return(nil)
		f.cache.On("Invalidate", ctx, service.ID).Return(nil)

		result, err := f.publisher.Publish(ctx, service.ID)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Replaced.PriceChanged)
		assert.Equal(t, 1, result.Replaced.NameChanged)
		assert.Equal(t, 1, result.Replaced.Total)
	})

	t.Run("categories without products are skipped", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)

		empty := newTestCategory(t, "Empty")
		ironing := newTestCategory(t, "Ironing")
		suit := newTestProduct(t, "Suit", 20.00, ironing.ID)

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.snapshotRepo.On("FindByServiceID", ctx, service.ID).Return([]laundry.PriceSnapshot{}, nil)
		f.categoryRepo.On("FindChildren", ctx, service.CategoryID).Return([]catalog.Category{*empty, *ironing}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, empty.ID).Return([]catalog.Product{}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, ironing.ID).Return([]catalog.Product{*suit}, nil)
		f.cache.On("Invalidate", ctx, service.ID).Return(nil)

		var saved []laundry.PriceSnapshot
		f.serviceRepo.On("ReplaceSnapshots", ctx, service, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(2).([]laundry.PriceSnapshot)
		}).Return(nil)

		_, err := f.publisher.Publish(ctx, service.ID)

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, 10, saved[0].CategorySequence)
	})

	t.Run("not found propagates", func(t *testing.T) {
		f := newPublisherFixture()
		id := uuid.New()
		f.serviceRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := f.publisher.Publish(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("replace failure leaves no result", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)
		washing := newTestCategory(t, "Washing")
		shirt := newTestProduct(t, "Shirt", 5.00, washing.ID)

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.snapshotRepo.On("FindByServiceID", ctx, service.ID).Return([]laundry.PriceSnapshot{}, nil)
		f.categoryRepo.On("FindChildren", ctx, service.CategoryID).Return([]catalog.Category{*washing}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, washing.ID).Return([]catalog.Product{*shirt}, nil)
		f.serviceRepo.On("ReplaceSnapshots", ctx, service, mock.Anything).Return(shared.NewDomainError("DB_ERROR", "write failed"))

		result, err := f.publisher.Publish(ctx, service.ID)

		assert.Error(t, err)
		assert.Nil(t, result)
		f.cache.AssertNotCalled(t, "Invalidate", ctx, service.ID)
	})
}

func TestPublisher_Unpublish(t *testing.T) {
	ctx := context.Background()

	t.Run("unpublish hides the list and keeps snapshots", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)
		service.MarkPublished(time.Now())

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.serviceRepo.On("Save", ctx, service).Return(nil)
		f.cache.On("Invalidate", ctx, service.ID).Return(nil)

		require.NoError(t, f.publisher.Unpublish(ctx, service.ID))

		assert.False(t, service.PricingPublished)
		assert.NotNil(t, service.PricingLastUpdated)
	})

	t.Run("unpublish is idempotent", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.serviceRepo.On("Save", ctx, service).Return(nil)
		f.cache.On("Invalidate", ctx, service.ID).Return(nil)

		require.NoError(t, f.publisher.Unpublish(ctx, service.ID))
		require.NoError(t, f.publisher.Unpublish(ctx, service.ID))
	})
}

func TestPublisher_PendingChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("published and in sync", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)
		service.MarkPublished(time.Now())

		washing := newTestCategory(t, "Washing")
		shirt := newTestProduct(t, "Shirt", 5.00, washing.ID)
		rows := []laundry.PriceSnapshot{
			*laundry.NewPriceSnapshot(service.ID, washing.ID, "Washing", 10,
				shirt.ID, "Shirt", decimal.NewFromFloat(5.00), 10, time.Now()),
		}

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.snapshotRepo.On("FindByServiceID", ctx, service.ID).Return(rows, nil)
		f.productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*shirt}, nil)
		f.categoryRepo.On("FindChildren", ctx, service.CategoryID).Return([]catalog.Category{*washing}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, washing.ID).Return([]catalog.Product{*shirt}, nil)

		pending, err := f.publisher.PendingChanges(ctx, service.ID)
		require.NoError(t, err)
		assert.False(t, pending)
	})

	t.Run("new catalog item makes changes pending", func(t *testing.T) {
		f := newPublisherFixture()
		service := newTestService(t)
		service.MarkPublished(time.Now())

		washing := newTestCategory(t, "Washing")
		shirt := newTestProduct(t, "Shirt", 5.00, washing.ID)
		curtains := newTestProduct(t, "Curtains", 25.00, washing.ID)
		rows := []laundry.PriceSnapshot{
			*laundry.NewPriceSnapshot(service.ID, washing.ID, "Washing", 10,
				shirt.ID, "Shirt", decimal.NewFromFloat(5.00), 10, time.Now()),
		}

		f.serviceRepo.On("FindByID", ctx, service.ID).Return(service, nil)
		f.snapshotRepo.On("FindByServiceID", ctx, service.ID).Return(rows, nil)
		f.productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*shirt}, nil)
		f.categoryRepo.On("FindChildren", ctx, service.CategoryID).Return([]catalog.Category{*washing}, nil)
		f.productRepo.On("FindActiveByCategory", ctx, washing.ID).Return([]catalog.Product{*shirt, *curtains}, nil)

		pending, err := f.publisher.PendingChanges(ctx, service.ID)
		require.NoError(t, err)
		assert.True(t, pending)
	})
}
