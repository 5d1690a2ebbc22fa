package laundry

import (
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
)

// Event type names
const (
	EventServiceCreated     = "laundry.service.created"
	EventPricingPublished   = "laundry.pricing.published"
	EventPricingUnpublished = "laundry.pricing.unpublished"
	EventOrderConfirmed     = "laundry.order.confirmed"
	EventQueryResolved      = "laundry.query.resolved"
)

// ServiceCreatedEvent is raised when a new service is created
type ServiceCreatedEvent struct {
	shared.BaseDomainEvent
	ServiceName string
}

// NewServiceCreatedEvent creates a ServiceCreatedEvent
func NewServiceCreatedEvent(s *Service) *ServiceCreatedEvent {
	return &ServiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventServiceCreated, s.ID),
		ServiceName:     s.Name,
	}
}

// PricingPublishedEvent is raised when a service's price list is published
type PricingPublishedEvent struct {
	shared.BaseDomainEvent
	ServiceName string
	PublishedAt time.Time
}

// NewPricingPublishedEvent creates a PricingPublishedEvent
func NewPricingPublishedEvent(s *Service, at time.Time) *PricingPublishedEvent {
	return &PricingPublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPricingPublished, s.ID),
		ServiceName:     s.Name,
		PublishedAt:     at,
	}
}

// PricingUnpublishedEvent is raised when a price list is withdrawn
type PricingUnpublishedEvent struct {
	shared.BaseDomainEvent
	ServiceName string
}

// NewPricingUnpublishedEvent creates a PricingUnpublishedEvent
func NewPricingUnpublishedEvent(s *Service) *PricingUnpublishedEvent {
	return &PricingUnpublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPricingUnpublished, s.ID),
		ServiceName:     s.Name,
	}
}

// OrderConfirmedEvent is raised when a draft order is confirmed
type OrderConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string
	LineCount   int
}

// NewOrderConfirmedEvent creates an OrderConfirmedEvent
func NewOrderConfirmedEvent(o *LaundryOrder) *OrderConfirmedEvent {
	return &OrderConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderConfirmed, o.ID),
		OrderNumber:     o.OrderNumber,
		LineCount:       len(o.Lines),
	}
}

// QueryResolvedEvent is raised when a contact query is resolved
type QueryResolvedEvent struct {
	shared.BaseDomainEvent
	Email   string
	Subject string
}

// NewQueryResolvedEvent creates a QueryResolvedEvent
func NewQueryResolvedEvent(q *ContactQuery) *QueryResolvedEvent {
	return &QueryResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventQueryResolved, q.ID),
		Email:           q.Email,
		Subject:         q.Subject,
	}
}
