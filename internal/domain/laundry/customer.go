package laundry

import (
	"strings"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
)

// Customer is the laundry-side record of a person we do business
// with. It composes rather than extends the host platform's contact:
// matching against incoming requests happens by email here, and any
// upstream contact reference stays an opaque external ID.
type Customer struct {
	shared.BaseAggregateRoot
	Name       string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone      string `gorm:"type:varchar(30)"`
	Address    string `gorm:"type:text"`
	ExternalID string `gorm:"type:varchar(64);index"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "laundry_customers"
}

// NewCustomer creates a new customer record
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Customer email is invalid")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Phone:             strings.TrimSpace(phone),
		Address:           address,
	}, nil
}

// PhoneMatches compares phone numbers ignoring spaces and dashes.
// Empty stored phones match anything.
func (c *Customer) PhoneMatches(phone string) bool {
	normalize := func(p string) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '-' || r == '(' || r == ')' {
				return -1
			}
			return r
		}, p)
	}
	stored := normalize(c.Phone)
	if stored == "" {
		return true
	}
	return stored == normalize(phone)
}

// UpdateContact refreshes the customer's contact details
func (c *Customer) UpdateContact(phone, address string) {
	if phone != "" {
		c.Phone = strings.TrimSpace(phone)
	}
	if address != "" {
		c.Address = address
	}
	c.Touch()
	c.IncrementVersion()
}
