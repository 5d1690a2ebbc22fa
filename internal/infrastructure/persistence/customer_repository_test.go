package persistence

import (
	"context"
	"testing"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCustomerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&laundry.Customer{})
	require.NoError(t, err)
	return db
}

func TestGormCustomerRepository_FindByEmail(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	customer, err := laundry.NewCustomer("Priya Shah", "Priya.Shah@Example.com", "+1 555 0101", "12 Main St")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, customer))

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "PRIYA.SHAH@example.COM")
		require.NoError(t, err)
		assert.Equal(t, customer.ID, found.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
