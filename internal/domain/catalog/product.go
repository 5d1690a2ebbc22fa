package catalog

import (
	"strings"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the point-of-sale catalog.
// Each laundry service is backed by exactly one product; the product
// carries the live sales price.
type Product struct {
	shared.BaseAggregateRoot
	Name       string          `gorm:"type:varchar(200);not null"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	ListPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Active     bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(name string, categoryID *uuid.UUID, listPrice decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if listPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		CategoryID:        categoryID,
		ListPrice:         listPrice,
		Active:            true,
	}, nil
}

// UpdatePrice changes the live sales price
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.ListPrice = price
	p.Touch()
	p.IncrementVersion()
	return nil
}

// Rename changes the product name
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.Touch()
	p.IncrementVersion()
	return nil
}

// Archive marks the product as inactive. Archived products are
// dropped from published price lists on read.
func (p *Product) Archive() {
	p.Active = false
	p.Touch()
	p.IncrementVersion()
}

// Restore reactivates an archived product
func (p *Product) Restore() {
	p.Active = true
	p.Touch()
	p.IncrementVersion()
}
