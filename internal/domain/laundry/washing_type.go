package laundry

import (
	"strings"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WashingType is a kind of washing work (e.g. dry clean, steam iron)
// with a base charge per unit.
type WashingType struct {
	shared.BaseAggregateRoot
	Name   string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (WashingType) TableName() string {
	return "washing_types"
}

// NewWashingType creates a new washing type
func NewWashingType(name string, amount decimal.Decimal) (*WashingType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Washing type name cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Washing type amount cannot be negative")
	}
	return &WashingType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Amount:            amount,
	}, nil
}

// WorkStatus represents the state of one washing work record
type WorkStatus string

const (
	WorkStatusPending    WorkStatus = "pending"
	WorkStatusInProgress WorkStatus = "in_progress"
	WorkStatusDone       WorkStatus = "done"
)

// WashingWork tracks the physical washing of one order line. One
// record is created per line when the order is confirmed.
type WashingWork struct {
	shared.BaseAggregateRoot
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderLineID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	WashingTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	Status        WorkStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// TableName returns the table name for GORM
func (WashingWork) TableName() string {
	return "washing_works"
}

// NewWashingWork creates a pending work record for an order line
func NewWashingWork(orderID, orderLineID, washingTypeID uuid.UUID) *WashingWork {
	return &WashingWork{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		OrderLineID:       orderLineID,
		WashingTypeID:     washingTypeID,
		Status:            WorkStatusPending,
	}
}

// Start moves the work into progress
func (w *WashingWork) Start() error {
	if w.Status != WorkStatusPending {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Washing work can only start from pending")
	}
	now := time.Now()
	w.Status = WorkStatusInProgress
	w.StartedAt = &now
	w.Touch()
	w.IncrementVersion()
	return nil
}

// Complete finishes the work
func (w *WashingWork) Complete() error {
	if w.Status != WorkStatusInProgress {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Washing work can only complete from in progress")
	}
	now := time.Now()
	w.Status = WorkStatusDone
	w.CompletedAt = &now
	w.Touch()
	w.IncrementVersion()
	return nil
}
