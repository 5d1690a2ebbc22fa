package pricing

import (
	"context"

	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Presenter builds the display-ready nested price list for a service.
// The customer audience only ever sees last-published values; the
// preview audience sees published and live values side by side with
// per-item change status. An unpublished service degrades to the live
// catalog with every item tagged new, it is never an error.
type Presenter struct {
	serviceRepo  laundry.ServiceRepository
	snapshotRepo laundry.SnapshotRepository
	catalog      *catalogView
	cache        PriceListCache
	logger       *zap.Logger
}

// NewPresenter creates a new Presenter
func NewPresenter(
	serviceRepo laundry.ServiceRepository,
	snapshotRepo laundry.SnapshotRepository,
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	cache PriceListCache,
	logger *zap.Logger,
) *Presenter {
	return &Presenter{
		serviceRepo:  serviceRepo,
		snapshotRepo: snapshotRepo,
		catalog:      newCatalogView(categoryRepo, productRepo),
		cache:        cache,
		logger:       logger,
	}
}

// BuildDisplayBySlug resolves a service by slug and builds its display
func (p *Presenter) BuildDisplayBySlug(ctx context.Context, slug string, audience Audience) (*ServiceDisplay, error) {
	service, err := p.serviceRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return p.BuildDisplay(ctx, service.ID, audience)
}

// BuildDisplay builds the price list view for one audience. Customer
// views of published services are served from cache when possible;
// preview views and fallback views are always computed fresh.
func (p *Presenter) BuildDisplay(ctx context.Context, serviceID uuid.UUID, audience Audience) (*ServiceDisplay, error) {
	service, err := p.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	cacheable := audience == AudienceCustomer && service.PricingPublished
	if cacheable && p.cache != nil {
		cached, ok, err := p.cache.Get(ctx, service.ID)
		if err != nil {
			p.logger.Warn("price list cache read failed",
				zap.String("service_id", service.ID.String()), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	display := p.newServiceDisplay(service)

	if !service.PricingPublished {
		display.Categories, err = p.buildFallback(ctx, service)
	} else {
		display.Categories, err = p.buildFromSnapshot(ctx, service, audience)
	}
	if err != nil {
		return nil, err
	}

	if cacheable && p.cache != nil {
		if err := p.cache.Set(ctx, service.ID, display); err != nil {
			p.logger.Warn("price list cache write failed",
				zap.String("service_id", service.ID.String()), zap.Error(err))
		}
	}
	return display, nil
}

func (p *Presenter) newServiceDisplay(service *laundry.Service) *ServiceDisplay {
	return &ServiceDisplay{
		ID:          service.ID,
		Name:        service.Name,
		Slug:        service.Slug,
		Tagline:     service.Tagline,
		ImageURL:    service.ImageURL,
		Published:   service.PricingPublished,
		PublishedAt: service.PricingLastUpdated,
		Currency:    currencyDisplay(valueobject.DefaultCurrency),
		Categories:  []CategoryDisplay{},
	}
}

// buildFallback renders the live catalog directly. With no snapshot
// baseline every item is tagged new and shows its current values.
func (p *Presenter) buildFallback(ctx context.Context, service *laundry.Service) ([]CategoryDisplay, error) {
	tree, err := p.catalog.liveTree(ctx, service.CategoryID)
	if err != nil {
		return nil, err
	}
	categories := make([]CategoryDisplay, 0, len(tree))
	seq := 0
	for i := range tree {
		if len(tree[i].products) == 0 {
			continue
		}
		seq += laundry.SequenceStep
		group := CategoryDisplay{
			ID:       tree[i].category.ID,
			Name:     tree[i].category.Name,
			Sequence: seq,
			Products: make([]ProductDisplay, 0, len(tree[i].products)),
		}
		for j := range tree[i].products {
			item := &tree[i].products[j]
			group.Products = append(group.Products, ProductDisplay{
				ID:           item.ID,
				Name:         item.Name,
				Price:        item.ListPrice.StringFixed(2),
				CurrentName:  item.Name,
				CurrentPrice: item.ListPrice.StringFixed(2),
				ChangeStatus: StatusNew,
			})
		}
		categories = append(categories, group)
	}
	return categories, nil
}

// buildFromSnapshot renders the published snapshot set, dropping rows
// whose product is archived or deleted, then (preview only) appends
// catalog items that were added since the last publish.
func (p *Presenter) buildFromSnapshot(ctx context.Context, service *laundry.Service, audience Audience) ([]CategoryDisplay, error) {
	rows, err := p.snapshotRepo.FindByServiceID(ctx, service.ID)
	if err != nil {
		return nil, err
	}
	live, err := p.catalog.liveItems(ctx, rows)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryDisplay, 0)
	index := make(map[uuid.UUID]int) // category ID to position in categories
	snapshotted := make(map[uuid.UUID]struct{}, len(rows))

	for i := range rows {
		row := &rows[i]
		snapshotted[row.ProductID] = struct{}{}
		changes := row.ChangesAgainst(live[row.ProductID])
		if !changes.Active {
			continue
		}

		pos, ok := index[row.CategoryID]
		if !ok {
			pos = len(categories)
			index[row.CategoryID] = pos
			categories = append(categories, CategoryDisplay{
				ID:       row.CategoryID,
				Name:     row.CategoryName,
				Sequence: row.CategorySequence,
				Products: make([]ProductDisplay, 0),
			})
		}
		categories[pos].Products = append(categories[pos].Products, p.renderRow(row, changes, audience))
	}

	if audience == AudiencePreview {
		categories, err = p.appendNewItems(ctx, service, categories, index, snapshotted)
		if err != nil {
			return nil, err
		}
	}
	return categories, nil
}

// renderRow applies the audience's value-selection rules to one row
func (p *Presenter) renderRow(row *laundry.PriceSnapshot, changes laundry.Changes, audience Audience) ProductDisplay {
	if audience == AudienceCustomer {
		return ProductDisplay{
			ID:    row.ProductID,
			Name:  row.ProductName,
			Price: row.PublishedPrice.StringFixed(2),
		}
	}

	name := row.ProductName
	if changes.NameChanged {
		name = changes.CurrentName
	}
	price := row.PublishedPrice
	if changes.PriceChanged {
		price = changes.CurrentPrice
	}
	status := StatusPublished
	if changes.HasChanges {
		status = StatusModified
	}
	return ProductDisplay{
		ID:             row.ProductID,
		Name:           name,
		Price:          price.StringFixed(2),
		PublishedName:  row.ProductName,
		PublishedPrice: row.PublishedPrice.StringFixed(2),
		CurrentName:    changes.CurrentName,
		CurrentPrice:   changes.CurrentPrice.StringFixed(2),
		PriceChanged:   changes.PriceChanged,
		NameChanged:    changes.NameChanged,
		HasChanges:     changes.HasChanges,
		ChangeStatus:   status,
	}
}

// appendNewItems surfaces catalog items added since the last publish
// as synthetic rows tagged new, grouped into their real category. A
// category group is created on the fly when all of its snapshot rows
// were dropped or it never had any.
func (p *Presenter) appendNewItems(
	ctx context.Context,
	service *laundry.Service,
	categories []CategoryDisplay,
	index map[uuid.UUID]int,
	snapshotted map[uuid.UUID]struct{},
) ([]CategoryDisplay, error) {
	tree, err := p.catalog.liveTree(ctx, service.CategoryID)
	if err != nil {
		return nil, err
	}

	nextSeq := 0
	for i := range categories {
		if categories[i].Sequence > nextSeq {
			nextSeq = categories[i].Sequence
		}
	}

	for i := range tree {
		cat := &tree[i].category
		for j := range tree[i].products {
			item := &tree[i].products[j]
			if _, ok := snapshotted[item.ID]; ok {
				continue
			}
			pos, ok := index[cat.ID]
			if !ok {
				nextSeq += laundry.SequenceStep
				pos = len(categories)
				index[cat.ID] = pos
				categories = append(categories, CategoryDisplay{
					ID:       cat.ID,
					Name:     cat.Name,
					Sequence: nextSeq,
					Products: make([]ProductDisplay, 0),
				})
			}
			categories[pos].Products = append(categories[pos].Products, ProductDisplay{
				ID:           item.ID,
				Name:         item.Name,
				Price:        item.ListPrice.StringFixed(2),
				CurrentName:  item.Name,
				CurrentPrice: item.ListPrice.StringFixed(2),
				ChangeStatus: StatusNew,
			})
		}
	}

	return categories, nil
}

// ListServices returns the display of every active service for the
// public site's service overview.
func (p *Presenter) ListServices(ctx context.Context, audience Audience) ([]ServiceDisplay, error) {
	services, err := p.serviceRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	displays := make([]ServiceDisplay, 0, len(services))
	for i := range services {
		d, err := p.BuildDisplay(ctx, services[i].ID, audience)
		if err != nil {
			return nil, err
		}
		displays = append(displays, *d)
	}
	return displays, nil
}
