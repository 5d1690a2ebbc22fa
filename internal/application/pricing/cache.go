package pricing

import (
	"context"

	"github.com/google/uuid"
)

// PriceListCache caches the customer-audience display of a published
// price list. The cached view only changes on publish or unpublish,
// never on catalog drift, so the publisher invalidates it and every
// other path just reads through. Preview views are never cached.
type PriceListCache interface {
	// Get returns the cached customer display, or ok=false on a miss
	Get(ctx context.Context, serviceID uuid.UUID) (*ServiceDisplay, bool, error)

	// Set stores the customer display
	Set(ctx context.Context, serviceID uuid.UUID, display *ServiceDisplay) error

	// Invalidate drops the cached display for a service
	Invalidate(ctx context.Context, serviceID uuid.UUID) error
}
