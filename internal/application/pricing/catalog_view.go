package pricing

import (
	"context"

	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/google/uuid"
)

// liveCategory is one immediate child category of a service's root
// category together with its active products, in traversal order.
type liveCategory struct {
	category catalog.Category
	products []catalog.Product
}

// catalogView wraps the read-only catalog queries shared by the
// publisher and the presenter.
type catalogView struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

func newCatalogView(categoryRepo catalog.CategoryRepository, productRepo catalog.ProductRepository) *catalogView {
	return &catalogView{categoryRepo: categoryRepo, productRepo: productRepo}
}

// liveTree loads the immediate child categories of the root and the
// active products in each, in catalog traversal order. Categories
// without products are included here; display-level dropping happens
// in the presenter.
func (v *catalogView) liveTree(ctx context.Context, rootCategoryID uuid.UUID) ([]liveCategory, error) {
	children, err := v.categoryRepo.FindChildren(ctx, rootCategoryID)
	if err != nil {
		return nil, err
	}
	tree := make([]liveCategory, 0, len(children))
	for i := range children {
		products, err := v.productRepo.FindActiveByCategory(ctx, children[i].ID)
		if err != nil {
			return nil, err
		}
		tree = append(tree, liveCategory{category: children[i], products: products})
	}
	return tree, nil
}

// liveItems resolves the current catalog state of every snapshotted
// product, including archived ones. Products deleted from the catalog
// are absent from the repository result and stay as zero-value
// entries in the map.
func (v *catalogView) liveItems(ctx context.Context, rows []laundry.PriceSnapshot) (map[uuid.UUID]laundry.LiveItem, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ProductID)
	}
	live := make(map[uuid.UUID]laundry.LiveItem, len(rows))
	if len(ids) == 0 {
		return live, nil
	}
	products, err := v.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		p := &products[i]
		live[p.ID] = laundry.LiveItem{
			Name:   p.Name,
			Price:  p.ListPrice,
			Active: p.Active,
			Exists: true,
		}
	}
	return live, nil
}

// sellableItems flattens a live tree into the map shape used by the
// pending-changes derivation.
func sellableItems(tree []liveCategory) map[uuid.UUID]laundry.LiveItem {
	live := make(map[uuid.UUID]laundry.LiveItem)
	for i := range tree {
		for j := range tree[i].products {
			p := &tree[i].products[j]
			live[p.ID] = laundry.LiveItem{
				Name:   p.Name,
				Price:  p.ListPrice,
				Active: p.Active,
				Exists: true,
			}
		}
	}
	return live
}
