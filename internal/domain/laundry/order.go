package laundry

import (
	"strings"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/feedygotech/laundry-backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a laundry order
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusOrder     OrderStatus = "order"
	OrderStatusProcess   OrderStatus = "process"
	OrderStatusDone      OrderStatus = "done"
	OrderStatusDelivery  OrderStatus = "delivery"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid returns true if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusOrder, OrderStatusProcess,
		OrderStatusDone, OrderStatusDelivery, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks whether the status may move to the target
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusDraft:     {OrderStatusOrder, OrderStatusCancelled},
		OrderStatusOrder:     {OrderStatusProcess, OrderStatusCancelled},
		OrderStatusProcess:   {OrderStatusDone, OrderStatusCancelled},
		OrderStatusDone:      {OrderStatusDelivery},
		OrderStatusDelivery:  {},
		OrderStatusCancelled: {},
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// LaundryOrder is an order for laundry work, from intake (counter or
// POS) through washing to delivery.
type LaundryOrder struct {
	shared.BaseAggregateRoot
	OrderNumber  string      `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	OrderDate    time.Time   `gorm:"not null"`
	DeliveryDate *time.Time
	PosReference string      `gorm:"type:varchar(64);index"` // set when the order originated from a POS session
	Notes        string      `gorm:"type:text"`
	Lines        []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (LaundryOrder) TableName() string {
	return "laundry_orders"
}

// OrderLine is one garment batch within an order
type OrderLine struct {
	shared.BaseEntity
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	Description   string          `gorm:"type:varchar(200);not null"`
	WashingTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:1"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "laundry_order_lines"
}

// Subtotal returns quantity times unit price for the line
func (l *OrderLine) Subtotal() valueobject.Money {
	return valueobject.NewMoneyUSD(l.Quantity.Mul(l.UnitPrice))
}

// NewLaundryOrder creates a draft order for a customer. The order
// number is assigned by the repository on first save.
func NewLaundryOrder(customerID uuid.UUID) (*LaundryOrder, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Order requires a customer")
	}
	return &LaundryOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Status:            OrderStatusDraft,
		OrderDate:         time.Now(),
	}, nil
}

// AddLine appends a garment batch to a draft order
func (o *LaundryOrder) AddLine(productID uuid.UUID, description string, washingTypeID uuid.UUID, quantity, unitPrice decimal.Decimal) error {
	if o.Status != OrderStatusDraft {
		return shared.NewDomainError("ORDER_NOT_DRAFT", "Lines can only be added to draft orders")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("INVALID_LINE", "Order line description cannot be empty")
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_LINE", "Order line quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_LINE", "Order line price cannot be negative")
	}
	line := OrderLine{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       o.ID,
		ProductID:     productID,
		Description:   description,
		WashingTypeID: washingTypeID,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
	}
	o.Lines = append(o.Lines, line)
	o.Touch()
	return nil
}

// Total returns the sum of all line subtotals
func (o *LaundryOrder) Total() valueobject.Money {
	total := valueobject.ZeroUSD()
	for i := range o.Lines {
		total = total.MustAdd(o.Lines[i].Subtotal())
	}
	return total
}

// Confirm moves a draft order to the confirmed state. One washing
// work record per line is created by the application layer on this
// transition.
func (o *LaundryOrder) Confirm() error {
	if len(o.Lines) == 0 {
		return shared.NewDomainError("ORDER_EMPTY", "Cannot confirm an order without lines")
	}
	if err := o.transition(OrderStatusOrder); err != nil {
		return err
	}
	o.AddDomainEvent(NewOrderConfirmedEvent(o))
	return nil
}

// StartProcessing moves a confirmed order into the washing stage
func (o *LaundryOrder) StartProcessing() error {
	return o.transition(OrderStatusProcess)
}

// MarkDone completes the washing stage
func (o *LaundryOrder) MarkDone() error {
	return o.transition(OrderStatusDone)
}

// Deliver hands the order back to the customer
func (o *LaundryOrder) Deliver() error {
	if err := o.transition(OrderStatusDelivery); err != nil {
		return err
	}
	now := time.Now()
	o.DeliveryDate = &now
	return nil
}

// Cancel aborts the order. Delivered orders cannot be cancelled.
func (o *LaundryOrder) Cancel() error {
	return o.transition(OrderStatusCancelled)
}

func (o *LaundryOrder) transition(target OrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition order from "+string(o.Status)+" to "+string(target))
	}
	o.Status = target
	o.Touch()
	o.IncrementVersion()
	return nil
}
