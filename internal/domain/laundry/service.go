package laundry

import (
	"strings"
	"time"
	"unicode"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service is a customer-facing grouping of one top-level catalog
// category. It is the unit of price-list publication: publishing a
// service freezes the current names and prices of every item under
// its category into a snapshot set.
type Service struct {
	shared.BaseAggregateRoot
	Name               string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug               string     `gorm:"type:varchar(120);not null;uniqueIndex"`
	Tagline            string     `gorm:"type:varchar(200)"`
	Description        string     `gorm:"type:text"`
	ImageURL           string     `gorm:"type:varchar(500)"`
	CategoryID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Active             bool       `gorm:"not null;default:true"`
	PricingPublished   bool       `gorm:"not null;default:false"`
	PricingLastUpdated *time.Time
	Features           []ServiceFeature `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Benefits           []ServiceBenefit `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Service) TableName() string {
	return "laundry_services"
}

// ServiceFeature is a bullet point shown on the service page
type ServiceFeature struct {
	shared.BaseEntity
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Sequence  int       `gorm:"not null;default:10"`
}

// TableName returns the table name for GORM
func (ServiceFeature) TableName() string {
	return "laundry_service_features"
}

// ServiceBenefit is a highlighted benefit shown on the service page
type ServiceBenefit struct {
	shared.BaseEntity
	ServiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
	Sequence    int       `gorm:"not null;default:10"`
}

// TableName returns the table name for GORM
func (ServiceBenefit) TableName() string {
	return "laundry_service_benefits"
}

// NewService creates a new service bound to a top-level catalog category
func NewService(name string, categoryID uuid.UUID) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot exceed 100 characters")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("CATEGORY_REQUIRED", "Service requires a catalog category")
	}

	service := &Service{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              Slugify(name),
		CategoryID:        categoryID,
		Active:            true,
	}
	service.AddDomainEvent(NewServiceCreatedEvent(service))
	return service, nil
}

// Update changes the service's presentation fields. Renaming also
// regenerates the slug.
func (s *Service) Update(name, tagline, description, imageURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	s.Name = name
	s.Slug = Slugify(name)
	s.Tagline = tagline
	s.Description = description
	s.ImageURL = imageURL
	s.Touch()
	s.IncrementVersion()
	return nil
}

// MarkPublished records a successful price-list publication
func (s *Service) MarkPublished(at time.Time) {
	s.PricingPublished = true
	s.PricingLastUpdated = &at
	s.Touch()
	s.IncrementVersion()
	s.AddDomainEvent(NewPricingPublishedEvent(s, at))
}

// MarkUnpublished hides the published price list from customers.
// Snapshot rows are retained so a later publish can still compare
// against the last state. Idempotent.
func (s *Service) MarkUnpublished() {
	if !s.PricingPublished {
		return
	}
	s.PricingPublished = false
	s.Touch()
	s.IncrementVersion()
	s.AddDomainEvent(NewPricingUnpublishedEvent(s))
}

// Archive hides the service from all listings
func (s *Service) Archive() {
	s.Active = false
	s.Touch()
	s.IncrementVersion()
}

// Slugify converts a name into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, leading
// and trailing hyphens stripped.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
