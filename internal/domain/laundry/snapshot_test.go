package laundry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotRow(t *testing.T, name string, price float64) *PriceSnapshot {
	t.Helper()
	return NewPriceSnapshot(
		uuid.New(), uuid.New(), "Washing", 10,
		uuid.New(), name, decimal.NewFromFloat(price), 10, time.Now(),
	)
}

func TestPriceSnapshot_ChangesAgainst(t *testing.T) {
	t.Run("no change when live matches published", func(t *testing.T) {
		row := snapshotRow(t, "Shirt Wash", 10.00)
		c := row.ChangesAgainst(LiveItem{Name: "Shirt Wash", Price: decimal.NewFromFloat(10.00), Active: true, Exists: true})

		assert.False(t, c.PriceChanged)
		assert.False(t, c.NameChanged)
		assert.False(t, c.HasChanges)
		assert.True(t, c.Active)
	})

	t.Run("price change detected", func(t *testing.T) {
		row := snapshotRow(t, "Shirt Wash", 10.00)
		c := row.ChangesAgainst(LiveItem{Name: "Shirt Wash", Price: decimal.NewFromFloat(12.00), Active: true, Exists: true})

		assert.True(t, c.PriceChanged)
		assert.False(t, c.NameChanged)
		assert.True(t, c.HasChanges)
		assert.Equal(t, "12", c.CurrentPrice.String())
	})

	t.Run("name change detected", func(t *testing.T) {
		row := snapshotRow(t, "Shirt Wash", 10.00)
		c := row.ChangesAgainst(LiveItem{Name: "Shirt Wash Premium", Price: decimal.NewFromFloat(10.00), Active: true, Exists: true})

		assert.False(t, c.PriceChanged)
		assert.True(t, c.NameChanged)
		assert.True(t, c.HasChanges)
	})

	t.Run("delta of exactly one cent is not a change", func(t *testing.T) {
		row := snapshotRow(t, "Shirt Wash", 10.00)
		c := row.ChangesAgainst(LiveItem{Name: "Shirt Wash", Price: decimal.NewFromFloat(10.01), Active: true, Exists: true})

		assert.False(t, c.PriceChanged)
		assert.False(t, c.HasChanges)
	})

	t.Run("delta just above one cent is a change", func(t *testing.T) {
		row := snapshotRow(t, "Shirt Wash", 10.00)
		c := row.ChangesAgainst(LiveItem{Name: "Shirt Wash", Price: decimal.NewFromFloat(10.011), Active: true, Exists: true})

		assert.True(t, c.PriceChanged)
	})

	t.Run("deleted item compares against zero values", func(t *testing.T) {
		row := snapshotRow(t, "Shirt Wash", 10.00)
		c := row.ChangesAgainst(LiveItem{})

		assert.True(t, c.PriceChanged)
		assert.True(t, c.NameChanged)
		assert.True(t, c.HasChanges)
		assert.False(t, c.Active)
		assert.Empty(t, c.CurrentName)
		assert.True(t, c.CurrentPrice.IsZero())
	})

	t.Run("inactive item still diffs against its live values", func(t *testing.T) {
		row := snapshotRow(t, "Shirt Wash", 10.00)
		c := row.ChangesAgainst(LiveItem{Name: "Shirt Wash", Price: decimal.NewFromFloat(10.00), Active: false, Exists: true})

		assert.False(t, c.HasChanges)
		assert.False(t, c.Active)
	})
}

func TestSummarizeChanges(t *testing.T) {
	serviceID := uuid.New()
	categoryID := uuid.New()
	now := time.Now()

	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()
	rows := []PriceSnapshot{
		*NewPriceSnapshot(serviceID, categoryID, "Washing", 10, p1, "Shirt", decimal.NewFromFloat(5.00), 10, now),
		*NewPriceSnapshot(serviceID, categoryID, "Washing", 10, p2, "Trousers", decimal.NewFromFloat(8.00), 20, now),
		*NewPriceSnapshot(serviceID, categoryID, "Washing", 10, p3, "Jacket", decimal.NewFromFloat(12.00), 30, now),
	}
	live := map[uuid.UUID]LiveItem{
		p1: {Name: "Shirt", Price: decimal.NewFromFloat(6.00), Active: true, Exists: true},
		p2: {Name: "Pants", Price: decimal.NewFromFloat(8.00), Active: true, Exists: true},
		p3: {Name: "Jacket", Price: decimal.NewFromFloat(12.00), Active: true, Exists: true},
	}

	summary := SummarizeChanges(rows, live)

	assert.Equal(t, 1, summary.PriceChanged)
	assert.Equal(t, 1, summary.NameChanged)
	assert.Equal(t, 3, summary.Total)
}

func TestHasPendingChanges(t *testing.T) {
	newPublishedService := func(t *testing.T) *Service {
		t.Helper()
		s, err := NewService("Dry Cleaning", uuid.New())
		require.NoError(t, err)
		s.MarkPublished(time.Now())
		return s
	}

	t.Run("unpublished service with items has pending changes", func(t *testing.T) {
		s, err := NewService("Dry Cleaning", uuid.New())
		require.NoError(t, err)

		live := map[uuid.UUID]LiveItem{uuid.New(): {Name: "Shirt", Price: decimal.NewFromInt(5), Active: true, Exists: true}}
		assert.True(t, HasPendingChanges(s, nil, live, live))
	})

	t.Run("unpublished service with empty catalog has none", func(t *testing.T) {
		s, err := NewService("Dry Cleaning", uuid.New())
		require.NoError(t, err)

		assert.False(t, HasPendingChanges(s, nil, map[uuid.UUID]LiveItem{}, map[uuid.UUID]LiveItem{}))
	})

	t.Run("published service in sync has none", func(t *testing.T) {
		s := newPublishedService(t)
		productID := uuid.New()
		rows := []PriceSnapshot{
			*NewPriceSnapshot(s.ID, uuid.New(), "Washing", 10, productID, "Shirt", decimal.NewFromInt(5), 10, time.Now()),
		}
		live := map[uuid.UUID]LiveItem{
			productID: {Name: "Shirt", Price: decimal.NewFromInt(5), Active: true, Exists: true},
		}

		assert.False(t, HasPendingChanges(s, rows, live, live))
	})

	t.Run("diverged row is pending", func(t *testing.T) {
		s := newPublishedService(t)
		productID := uuid.New()
		rows := []PriceSnapshot{
			*NewPriceSnapshot(s.ID, uuid.New(), "Washing", 10, productID, "Shirt", decimal.NewFromInt(5), 10, time.Now()),
		}
		live := map[uuid.UUID]LiveItem{
			productID: {Name: "Shirt", Price: decimal.NewFromInt(7), Active: true, Exists: true},
		}

		assert.True(t, HasPendingChanges(s, rows, live, live))
	})

	t.Run("item never snapshotted is pending", func(t *testing.T) {
		s := newPublishedService(t)
		productID := uuid.New()
		rows := []PriceSnapshot{
			*NewPriceSnapshot(s.ID, uuid.New(), "Washing", 10, productID, "Shirt", decimal.NewFromInt(5), 10, time.Now()),
		}
		live := map[uuid.UUID]LiveItem{
			productID:  {Name: "Shirt", Price: decimal.NewFromInt(5), Active: true, Exists: true},
			uuid.New(): {Name: "Curtains", Price: decimal.NewFromInt(20), Active: true, Exists: true},
		}

		assert.True(t, HasPendingChanges(s, rows, live, live))
	})
}
