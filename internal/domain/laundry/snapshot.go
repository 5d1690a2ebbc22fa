package laundry

import (
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SequenceStep is the gap between consecutive sequence numbers in a
// snapshot set. Leaving gaps allows manual reordering later without
// renumbering existing rows.
const SequenceStep = 10

// PriceTolerance is the threshold below which a price difference is
// treated as rounding noise rather than a real change. The comparison
// is strict: a delta of exactly 0.01 does not count as changed.
var PriceTolerance = decimal.NewFromFloat(0.01)

// PriceSnapshot is one catalog item as it existed at last publish.
// The category and product names and the price are frozen copies;
// the live catalog may drift after publication and the drift is
// surfaced through ChangesAgainst, never written back here.
type PriceSnapshot struct {
	shared.BaseEntity
	ServiceID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_snapshot_service_product,priority:1"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null"`
	CategoryName     string          `gorm:"type:varchar(100);not null"`
	CategorySequence int             `gorm:"not null"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_snapshot_service_product,priority:2,unique"`
	ProductName      string          `gorm:"type:varchar(200);not null"`
	PublishedPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProductSequence  int             `gorm:"not null"`
	SnapshotDate     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PriceSnapshot) TableName() string {
	return "laundry_price_snapshots"
}

// LiveItem is the current catalog state of a snapshotted product.
// A zero LiveItem (Exists false) stands for a product that was
// deleted from the catalog entirely.
type LiveItem struct {
	Name   string
	Price  decimal.Decimal
	Active bool
	Exists bool
}

// Changes holds the per-row diff flags computed against the live
// catalog. Derived on every read, never stored.
type Changes struct {
	PriceChanged bool
	NameChanged  bool
	HasChanges   bool
	CurrentName  string
	CurrentPrice decimal.Decimal
	Active       bool
}

// ChangesAgainst compares the frozen row to the live catalog item.
// Price comparison uses a strict tolerance so rounding noise within
// one cent never reads as a change. When the product was deleted the
// current values stay at zero/empty and both flags trip, since the
// published state no longer matches anything live.
func (s *PriceSnapshot) ChangesAgainst(live LiveItem) Changes {
	c := Changes{
		CurrentName:  live.Name,
		CurrentPrice: live.Price,
		Active:       live.Exists && live.Active,
	}
	c.PriceChanged = s.PublishedPrice.Sub(live.Price).Abs().GreaterThan(PriceTolerance)
	c.NameChanged = s.ProductName != live.Name
	c.HasChanges = c.PriceChanged || c.NameChanged
	return c
}

// NewPriceSnapshot freezes one catalog item into a snapshot row
func NewPriceSnapshot(serviceID, categoryID uuid.UUID, categoryName string, categorySeq int,
	productID uuid.UUID, productName string, price decimal.Decimal, productSeq int, at time.Time) *PriceSnapshot {
	return &PriceSnapshot{
		BaseEntity:       shared.NewBaseEntity(),
		ServiceID:        serviceID,
		CategoryID:       categoryID,
		CategoryName:     categoryName,
		CategorySequence: categorySeq,
		ProductID:        productID,
		ProductName:      productName,
		PublishedPrice:   price,
		ProductSequence:  productSeq,
		SnapshotDate:     at,
	}
}

// ChangeSummary counts the rows of a snapshot set that diverge from
// the live catalog. Returned by publish so the operator sees what the
// new publication just absorbed.
type ChangeSummary struct {
	PriceChanged int `json:"price_changed"`
	NameChanged  int `json:"name_changed"`
	Total        int `json:"total"`
}

// SummarizeChanges computes the change counts for a snapshot set
// against a live-catalog lookup keyed by product ID.
func SummarizeChanges(rows []PriceSnapshot, live map[uuid.UUID]LiveItem) ChangeSummary {
	summary := ChangeSummary{Total: len(rows)}
	for i := range rows {
		c := rows[i].ChangesAgainst(live[rows[i].ProductID])
		if c.PriceChanged {
			summary.PriceChanged++
		}
		if c.NameChanged {
			summary.NameChanged++
		}
	}
	return summary
}

// HasPendingChanges reports whether the service's published price
// list has drifted from the live catalog: the service was never
// published and sellable items exist, any snapshot row diverges, or
// a sellable item exists that no snapshot row covers. The live map
// carries current values for every snapshotted product (archived
// included); sellable holds only the items currently offered under
// the service's categories.
func HasPendingChanges(service *Service, rows []PriceSnapshot, live, sellable map[uuid.UUID]LiveItem) bool {
	if !service.PricingPublished || service.PricingLastUpdated == nil {
		return len(sellable) > 0
	}
	snapshotted := make(map[uuid.UUID]struct{}, len(rows))
	for i := range rows {
		snapshotted[rows[i].ProductID] = struct{}{}
		if rows[i].ChangesAgainst(live[rows[i].ProductID]).HasChanges {
			return true
		}
	}
	for id := range sellable {
		if _, ok := snapshotted[id]; !ok {
			return true
		}
	}
	return false
}
