package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupServiceTestDB creates an in-memory SQLite database with the
// service and snapshot tables
func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&laundry.Service{},
		&laundry.ServiceFeature{},
		&laundry.ServiceBenefit{},
		&laundry.PriceSnapshot{},
	)
	require.NoError(t, err)
	return db
}

func newStoredService(t *testing.T, db *gorm.DB, name string) *laundry.Service {
	service, err := laundry.NewService(name, uuid.New())
	require.NoError(t, err)
	require.NoError(t, NewGormServiceRepository(db).Save(context.Background(), service))
	return service
}

func snapshotRow(serviceID uuid.UUID, categoryName string, categorySeq int, productName string, price string, productSeq int) laundry.PriceSnapshot {
	return *laundry.NewPriceSnapshot(
		serviceID, uuid.New(), categoryName, categorySeq,
		uuid.New(), productName, decimal.RequireFromString(price), productSeq,
		time.Now(),
	)
}

func TestGormServiceRepository_SaveAndFind(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewGormServiceRepository(db)
	ctx := context.Background()

	service := newStoredService(t, db, "Dry Cleaning")

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, service.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dry Cleaning", found.Name)
		assert.Equal(t, "dry-cleaning", found.Slug)
	})

	t.Run("find by slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "dry-cleaning")
		require.NoError(t, err)
		assert.Equal(t, service.ID, found.ID)
	})

	t.Run("find by category", func(t *testing.T) {
		found, err := repo.FindByCategoryID(ctx, service.CategoryID)
		require.NoError(t, err)
		assert.Equal(t, service.ID, found.ID)
	})

	t.Run("exists by name", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Dry Cleaning")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByName(ctx, "Shoe Repair")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindBySlug(ctx, "missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormServiceRepository_ReplaceSnapshots(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewGormServiceRepository(db)
	snapshots := NewGormSnapshotRepository(db)
	ctx := context.Background()

	service := newStoredService(t, db, "Wash and Fold")

	firstSet := []laundry.PriceSnapshot{
		snapshotRow(service.ID, "Shirts", 10, "Cotton Shirt", "5.00", 10),
		snapshotRow(service.ID, "Shirts", 10, "Silk Shirt", "9.50", 20),
	}
	service.MarkPublished(time.Now())
	require.NoError(t, repo.ReplaceSnapshots(ctx, service, firstSet))

	t.Run("rows and flags persisted", func(t *testing.T) {
		rows, err := snapshots.FindByServiceID(ctx, service.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		stored, err := repo.FindByID(ctx, service.ID)
		require.NoError(t, err)
		assert.True(t, stored.PricingPublished)
		require.NotNil(t, stored.PricingLastUpdated)
	})

	t.Run("second publish fully replaces the set", func(t *testing.T) {
		secondSet := []laundry.PriceSnapshot{
			snapshotRow(service.ID, "Trousers", 10, "Jeans", "7.00", 10),
			snapshotRow(service.ID, "Trousers", 10, "Chinos", "6.50", 20),
			snapshotRow(service.ID, "Trousers", 10, "Shorts", "4.00", 30),
		}
		service.MarkPublished(time.Now())
		require.NoError(t, repo.ReplaceSnapshots(ctx, service, secondSet))

		rows, err := snapshots.FindByServiceID(ctx, service.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.Equal(t, "Trousers", row.CategoryName)
		}
	})

	t.Run("failed replace leaves prior rows intact", func(t *testing.T) {
		before, err := snapshots.FindByServiceID(ctx, service.ID)
		require.NoError(t, err)
		require.Len(t, before, 3)

		// two rows for the same product violate the unique index
		dup := snapshotRow(service.ID, "Shirts", 10, "Cotton Shirt", "5.00", 10)
		dup2 := dup
		dup2.ID = uuid.New()
		err = repo.ReplaceSnapshots(ctx, service, []laundry.PriceSnapshot{dup, dup2})
		require.Error(t, err)

		after, err := snapshots.FindByServiceID(ctx, service.ID)
		require.NoError(t, err)
		assert.Len(t, after, 3)
	})

	t.Run("unknown service", func(t *testing.T) {
		ghost, err := laundry.NewService("Ghost", uuid.New())
		require.NoError(t, err)
		err = repo.ReplaceSnapshots(ctx, ghost, nil)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormServiceRepository_UnpublishKeepsSnapshots(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewGormServiceRepository(db)
	snapshots := NewGormSnapshotRepository(db)
	ctx := context.Background()

	service := newStoredService(t, db, "Ironing")
	service.MarkPublished(time.Now())
	require.NoError(t, repo.ReplaceSnapshots(ctx, service, []laundry.PriceSnapshot{
		snapshotRow(service.ID, "Linen", 10, "Bed Sheet", "3.00", 10),
	}))

	service.MarkUnpublished()
	require.NoError(t, repo.Save(ctx, service))

	stored, err := repo.FindByID(ctx, service.ID)
	require.NoError(t, err)
	assert.False(t, stored.PricingPublished)
	assert.NotNil(t, stored.PricingLastUpdated)

	count, err := snapshots.CountByServiceID(ctx, service.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormSnapshotRepository_Ordering(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewGormServiceRepository(db)
	snapshots := NewGormSnapshotRepository(db)
	ctx := context.Background()

	service := newStoredService(t, db, "Curtain Cleaning")

	// insert out of display order
	rows := []laundry.PriceSnapshot{
		snapshotRow(service.ID, "Heavy", 20, "Blackout Curtain", "12.00", 10),
		snapshotRow(service.ID, "Light", 10, "Voile", "8.00", 20),
		snapshotRow(service.ID, "Light", 10, "Net Curtain", "7.00", 10),
	}
	service.MarkPublished(time.Now())
	require.NoError(t, repo.ReplaceSnapshots(ctx, service, rows))

	ordered, err := snapshots.FindByServiceID(ctx, service.ID)
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, "Net Curtain", ordered[0].ProductName)
	assert.Equal(t, "Voile", ordered[1].ProductName)
	assert.Equal(t, "Blackout Curtain", ordered[2].ProductName)
}
