package laundry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Dry Cleaning", "dry-cleaning"},
		{"punctuation collapses", "Wash & Fold!", "wash-fold"},
		{"leading and trailing stripped", "  Premium Care  ", "premium-care"},
		{"digits kept", "24h Express", "24h-express"},
		{"already clean", "ironing", "ironing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestNewService(t *testing.T) {
	t.Run("creates active service with slug", func(t *testing.T) {
		s, err := NewService("Dry Cleaning", uuid.New())

		require.NoError(t, err)
		assert.Equal(t, "Dry Cleaning", s.Name)
		assert.Equal(t, "dry-cleaning", s.Slug)
		assert.True(t, s.Active)
		assert.False(t, s.PricingPublished)
		assert.Nil(t, s.PricingLastUpdated)
		assert.Len(t, s.GetDomainEvents(), 1)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewService("   ", uuid.New())
		assert.Error(t, err)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		_, err := NewService("Dry Cleaning", uuid.Nil)
		assert.Error(t, err)
	})
}

func TestService_Publication(t *testing.T) {
	t.Run("mark published records timestamp", func(t *testing.T) {
		s, err := NewService("Dry Cleaning", uuid.New())
		require.NoError(t, err)

		at := time.Now()
		s.MarkPublished(at)

		assert.True(t, s.PricingPublished)
		require.NotNil(t, s.PricingLastUpdated)
		assert.Equal(t, at, *s.PricingLastUpdated)
	})

	t.Run("unpublish keeps last updated timestamp", func(t *testing.T) {
		s, err := NewService("Dry Cleaning", uuid.New())
		require.NoError(t, err)
		s.MarkPublished(time.Now())

		s.MarkUnpublished()

		assert.False(t, s.PricingPublished)
		assert.NotNil(t, s.PricingLastUpdated)
	})

	t.Run("unpublish on unpublished service is a no-op", func(t *testing.T) {
		s, err := NewService("Dry Cleaning", uuid.New())
		require.NoError(t, err)
		version := s.GetVersion()

		s.MarkUnpublished()

		assert.Equal(t, version, s.GetVersion())
	})
}

func TestService_Update(t *testing.T) {
	s, err := NewService("Dry Cleaning", uuid.New())
	require.NoError(t, err)

	err = s.Update("Premium Dry Cleaning", "Spotless in 24h", "desc", "https://img.example/s.png")

	require.NoError(t, err)
	assert.Equal(t, "premium-dry-cleaning", s.Slug)
	assert.Equal(t, "Spotless in 24h", s.Tagline)
}
