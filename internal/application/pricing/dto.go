package pricing

import (
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Audience selects the value-visibility rules for a price-list view
type Audience string

const (
	// AudiencePreview is an operator seeing published and live values
	// side by side
	AudiencePreview Audience = "preview"
	// AudienceCustomer is an external viewer who only ever sees the
	// last-published state
	AudienceCustomer Audience = "customer"
)

// Change status tags shown to the preview audience
const (
	StatusNew       = "new"
	StatusModified  = "modified"
	StatusPublished = "published"
)

// CurrencyDisplay carries currency formatting metadata for rendering
type CurrencyDisplay struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Position string `json:"position"`
}

// ProductDisplay is one priced item in the rendered price list.
// Diff fields are only populated for the preview audience.
type ProductDisplay struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Price          string    `json:"price"`
	PublishedName  string    `json:"published_name,omitempty"`
	PublishedPrice string    `json:"published_price,omitempty"`
	CurrentName    string    `json:"current_name,omitempty"`
	CurrentPrice   string    `json:"current_price,omitempty"`
	PriceChanged   bool      `json:"price_changed,omitempty"`
	NameChanged    bool      `json:"name_changed,omitempty"`
	HasChanges     bool      `json:"has_changes,omitempty"`
	ChangeStatus   string    `json:"change_status,omitempty"`
}

// CategoryDisplay is one category group in the rendered price list
type CategoryDisplay struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Sequence int              `json:"sequence"`
	Products []ProductDisplay `json:"products"`
}

// ServiceDisplay is the display-ready nested price list for one service
type ServiceDisplay struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Tagline     string            `json:"tagline,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	Published   bool              `json:"published"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`
	Currency    CurrencyDisplay   `json:"currency"`
	Categories  []CategoryDisplay `json:"categories"`
}

// PublishResult is the operator feedback returned by a publish call.
// The change counts describe the snapshot set that was just replaced.
type PublishResult struct {
	ServiceID   uuid.UUID             `json:"service_id"`
	RowCount    int                   `json:"row_count"`
	PublishedAt time.Time             `json:"published_at"`
	Replaced    laundry.ChangeSummary `json:"replaced"`
}

// PendingService is one entry in the pending-changes overview
type PendingService struct {
	ServiceID   uuid.UUID  `json:"service_id"`
	Name        string     `json:"name"`
	Published   bool       `json:"published"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

func currencyDisplay(c valueobject.Currency) CurrencyDisplay {
	info := c.Info()
	return CurrencyDisplay{
		Code:     string(info.Code),
		Name:     info.Name,
		Symbol:   info.Symbol,
		Position: string(info.Position),
	}
}
