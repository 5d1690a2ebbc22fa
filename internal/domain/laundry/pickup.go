package laundry

import (
	"strings"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PickupStatus represents the lifecycle state of a pickup request
type PickupStatus string

const (
	PickupStatusNew       PickupStatus = "new"
	PickupStatusContacted PickupStatus = "contacted"
	PickupStatusCompleted PickupStatus = "completed"
	PickupStatusCancelled PickupStatus = "cancelled"
)

// IsValid returns true if the status is a known value
func (s PickupStatus) IsValid() bool {
	switch s {
	case PickupStatusNew, PickupStatusContacted, PickupStatusCompleted, PickupStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks whether the status may move to the target
func (s PickupStatus) CanTransitionTo(target PickupStatus) bool {
	transitions := map[PickupStatus][]PickupStatus{
		PickupStatusNew:       {PickupStatusContacted, PickupStatusCancelled},
		PickupStatusContacted: {PickupStatusCompleted, PickupStatusCancelled},
		PickupStatusCompleted: {},
		PickupStatusCancelled: {},
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// PickupRequest is a customer's request, submitted from the public
// site, to have laundry collected at an address. Requests are matched
// against existing customers by email only; a differing phone number
// is flagged rather than rejected.
type PickupRequest struct {
	shared.BaseAggregateRoot
	Name          string       `gorm:"type:varchar(100);not null"`
	Email         string       `gorm:"type:varchar(200);not null;index"`
	Phone         string       `gorm:"type:varchar(30);not null"`
	Address       string       `gorm:"type:text;not null"`
	PreferredDate *time.Time
	Notes         string       `gorm:"type:text"`
	Status        PickupStatus `gorm:"type:varchar(20);not null;default:'new'"`
	CustomerID    *uuid.UUID   `gorm:"type:uuid;index"`
	PhoneMismatch bool         `gorm:"not null;default:false"`
	ContactedAt   *time.Time
	ClosedAt      *time.Time
}

// TableName returns the table name for GORM
func (PickupRequest) TableName() string {
	return "pickup_requests"
}

// NewPickupRequest creates a new request from public form input
func NewPickupRequest(name, email, phone, address string, preferredDate *time.Time) (*PickupRequest, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is invalid")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Pickup address cannot be empty")
	}
	return &PickupRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Phone:             phone,
		Address:           address,
		PreferredDate:     preferredDate,
		Status:            PickupStatusNew,
	}, nil
}

// AttachCustomer links the request to a matched customer. When the
// submitted phone differs from the customer's stored phone the
// mismatch is recorded for the operator to verify.
func (r *PickupRequest) AttachCustomer(customer *Customer) {
	r.CustomerID = &customer.ID
	r.PhoneMismatch = !customer.PhoneMatches(r.Phone)
	r.Touch()
}

// MarkContacted records that an operator reached out to the customer
func (r *PickupRequest) MarkContacted() error {
	if err := r.transition(PickupStatusContacted); err != nil {
		return err
	}
	now := time.Now()
	r.ContactedAt = &now
	return nil
}

// Complete closes the request after the pickup happened
func (r *PickupRequest) Complete() error {
	if err := r.transition(PickupStatusCompleted); err != nil {
		return err
	}
	now := time.Now()
	r.ClosedAt = &now
	return nil
}

// Cancel closes the request without a pickup
func (r *PickupRequest) Cancel() error {
	if err := r.transition(PickupStatusCancelled); err != nil {
		return err
	}
	now := time.Now()
	r.ClosedAt = &now
	return nil
}

func (r *PickupRequest) transition(target PickupStatus) error {
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition pickup request from "+string(r.Status)+" to "+string(target))
	}
	r.Status = target
	r.Touch()
	r.IncrementVersion()
	return nil
}
