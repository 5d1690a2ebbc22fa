package pricing

import (
	"context"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher freezes a service's live catalog into a new snapshot set.
// Each publish is a full replace: every prior row for the service is
// deleted and the whole set recreated, so items removed from the
// catalog between publishes never linger.
type Publisher struct {
	serviceRepo  laundry.ServiceRepository
	snapshotRepo laundry.SnapshotRepository
	catalog      *catalogView
	cache        PriceListCache
	logger       *zap.Logger
}

// NewPublisher creates a new Publisher
func NewPublisher(
	serviceRepo laundry.ServiceRepository,
	snapshotRepo laundry.SnapshotRepository,
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	cache PriceListCache,
	logger *zap.Logger,
) *Publisher {
	return &Publisher{
		serviceRepo:  serviceRepo,
		snapshotRepo: snapshotRepo,
		catalog:      newCatalogView(categoryRepo, productRepo),
		cache:        cache,
		logger:       logger,
	}
}

// Publish replaces the service's snapshot set with the current
// catalog state. The returned summary counts how many rows of the
// replaced set had drifted, computed before the old rows are deleted,
// so the operator sees what the publication just absorbed.
func (p *Publisher) Publish(ctx context.Context, serviceID uuid.UUID) (*PublishResult, error) {
	service, err := p.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.CategoryID == uuid.Nil {
		return nil, shared.NewDomainError("CATEGORY_REQUIRED", "Service has no catalog category to publish from")
	}

	oldRows, err := p.snapshotRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	oldLive, err := p.catalog.liveItems(ctx, oldRows)
	if err != nil {
		return nil, err
	}
	replaced := laundry.SummarizeChanges(oldRows, oldLive)

	tree, err := p.catalog.liveTree(ctx, service.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows := buildSnapshotRows(service.ID, tree, now)

	service.MarkPublished(now)
	if err := p.serviceRepo.ReplaceSnapshots(ctx, service, rows); err != nil {
		return nil, err
	}

	p.invalidateCache(ctx, service.ID)

	p.logger.Info("price list published",
		zap.String("service", service.Name),
		zap.Int("rows", len(rows)),
		zap.Int("replaced_price_changes", replaced.PriceChanged),
		zap.Int("replaced_name_changes", replaced.NameChanged))

	return &PublishResult{
		ServiceID:   service.ID,
		RowCount:    len(rows),
		PublishedAt: now,
		Replaced:    replaced,
	}, nil
}

// Unpublish hides the price list from customers. Snapshot rows are
// kept so the last published state stays inspectable. Idempotent.
func (p *Publisher) Unpublish(ctx context.Context, serviceID uuid.UUID) error {
	service, err := p.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}
	service.MarkUnpublished()
	if err := p.serviceRepo.Save(ctx, service); err != nil {
		return err
	}
	p.invalidateCache(ctx, service.ID)
	return nil
}

// PendingChanges reports whether the service's published list has
// drifted from the live catalog.
func (p *Publisher) PendingChanges(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	service, err := p.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return false, err
	}
	rows, err := p.snapshotRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		return false, err
	}
	// rows may reference archived or deleted products no longer in
	// the sellable set; their diff runs against the full live state
	rowLive, err := p.catalog.liveItems(ctx, rows)
	if err != nil {
		return false, err
	}
	tree, err := p.catalog.liveTree(ctx, service.CategoryID)
	if err != nil {
		return false, err
	}
	return laundry.HasPendingChanges(service, rows, rowLive, sellableItems(tree)), nil
}

// ListPendingServices returns every active service whose price list
// has pending changes, for the operator overview and the daily digest.
func (p *Publisher) ListPendingServices(ctx context.Context) ([]PendingService, error) {
	services, err := p.serviceRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]PendingService, 0)
	for i := range services {
		s := &services[i]
		has, err := p.PendingChanges(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if has {
			pending = append(pending, PendingService{
				ServiceID:   s.ID,
				Name:        s.Name,
				Published:   s.PricingPublished,
				LastUpdated: s.PricingLastUpdated,
			})
		}
	}
	return pending, nil
}

func (p *Publisher) invalidateCache(ctx context.Context, serviceID uuid.UUID) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Invalidate(ctx, serviceID); err != nil {
		p.logger.Warn("price list cache invalidation failed",
			zap.String("service_id", serviceID.String()), zap.Error(err))
	}
}

// buildSnapshotRows freezes the live tree into snapshot rows with
// two-level step-10 sequencing. Gaps between sequence numbers leave
// room for manual reordering without renumbering existing rows.
func buildSnapshotRows(serviceID uuid.UUID, tree []liveCategory, at time.Time) []laundry.PriceSnapshot {
	rows := make([]laundry.PriceSnapshot, 0)
	categorySeq := 0
	for i := range tree {
		cat := &tree[i].category
		if len(tree[i].products) == 0 {
			continue
		}
		categorySeq += laundry.SequenceStep
		productSeq := 0
		for j := range tree[i].products {
			p := &tree[i].products[j]
			productSeq += laundry.SequenceStep
			rows = append(rows, *laundry.NewPriceSnapshot(
				serviceID, cat.ID, cat.Name, categorySeq,
				p.ID, p.Name, p.ListPrice, productSeq, at,
			))
		}
	}
	return rows
}
