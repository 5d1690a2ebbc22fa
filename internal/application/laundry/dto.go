package laundry

import (
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/google/uuid"
)

// CreateServiceRequest is the payload for creating a laundry service
type CreateServiceRequest struct {
	Name        string    `json:"name" binding:"required"`
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

// UpdateServiceRequest is the payload for updating a laundry service
type UpdateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ServiceResponse is the API representation of a laundry service
type ServiceResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	Tagline            string     `json:"tagline,omitempty"`
	Description        string     `json:"description,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	CategoryID         uuid.UUID  `json:"category_id"`
	Active             bool       `json:"active"`
	PricingPublished   bool       `json:"pricing_published"`
	PricingLastUpdated *time.Time `json:"pricing_last_updated,omitempty"`
	Features           []FeatureResponse `json:"features,omitempty"`
	Benefits           []BenefitResponse `json:"benefits,omitempty"`
}

// FeatureResponse is one service feature bullet
type FeatureResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Sequence int       `json:"sequence"`
}

// BenefitResponse is one service benefit card
type BenefitResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Sequence    int       `json:"sequence"`
}

// ToServiceResponse maps a service aggregate to its API shape
func ToServiceResponse(s *laundry.Service) *ServiceResponse {
	resp := &ServiceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Slug:               s.Slug,
		Tagline:            s.Tagline,
		Description:        s.Description,
		ImageURL:           s.ImageURL,
		CategoryID:         s.CategoryID,
		Active:             s.Active,
		PricingPublished:   s.PricingPublished,
		PricingLastUpdated: s.PricingLastUpdated,
	}
	for i := range s.Features {
		f := &s.Features[i]
		resp.Features = append(resp.Features, FeatureResponse{ID: f.ID, Title: f.Title, Sequence: f.Sequence})
	}
	for i := range s.Benefits {
		b := &s.Benefits[i]
		resp.Benefits = append(resp.Benefits, BenefitResponse{
			ID: b.ID, Title: b.Title, Description: b.Description, Icon: b.Icon, Sequence: b.Sequence,
		})
	}
	return resp
}

// OrderLineRequest is one garment batch in an order payload
type OrderLineRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	Description   string    `json:"description" binding:"required"`
	WashingTypeID uuid.UUID `json:"washing_type_id" binding:"required"`
	Quantity      string    `json:"quantity" binding:"required"`
	UnitPrice     string    `json:"unit_price"`
}

// CreateOrderRequest is the payload for creating a counter order
type CreateOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id" binding:"required"`
	Notes      string             `json:"notes"`
	Lines      []OrderLineRequest `json:"lines" binding:"required,min=1"`
}

// PosIntakeRequest is the payload the POS bridge posts after a
// laundry sale closes at the terminal
type PosIntakeRequest struct {
	PosReference  string             `json:"pos_reference" binding:"required"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	CustomerPhone string             `json:"customer_phone"`
	Lines         []OrderLineRequest `json:"lines" binding:"required,min=1"`
}

// OrderLineResponse is one garment batch in an order response
type OrderLineResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	Description   string    `json:"description"`
	WashingTypeID uuid.UUID `json:"washing_type_id"`
	Quantity      string    `json:"quantity"`
	UnitPrice     string    `json:"unit_price"`
	Subtotal      string    `json:"subtotal"`
}

// OrderResponse is the API representation of a laundry order
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	OrderNumber  string              `json:"order_number"`
	CustomerID   uuid.UUID           `json:"customer_id"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
	PosReference string              `json:"pos_reference,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	Total        string              `json:"total"`
	Lines        []OrderLineResponse `json:"lines"`
}

// ToOrderResponse maps an order aggregate to its API shape
func ToOrderResponse(o *laundry.LaundryOrder) *OrderResponse {
	resp := &OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerID:   o.CustomerID,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate,
		DeliveryDate: o.DeliveryDate,
		PosReference: o.PosReference,
		Notes:        o.Notes,
		Total:        o.Total().StringFixed(2),
		Lines:        make([]OrderLineResponse, 0, len(o.Lines)),
	}
	for i := range o.Lines {
		l := &o.Lines[i]
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:            l.ID,
			ProductID:     l.ProductID,
			Description:   l.Description,
			WashingTypeID: l.WashingTypeID,
			Quantity:      l.Quantity.String(),
			UnitPrice:     l.UnitPrice.StringFixed(2),
			Subtotal:      l.Subtotal().StringFixed(2),
		})
	}
	return resp
}

// CreatePickupRequest is the public payload for requesting a pickup
type CreatePickupRequest struct {
	Name          string     `json:"name" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	Phone         string     `json:"phone" binding:"required"`
	Address       string     `json:"address" binding:"required"`
	PreferredDate *time.Time `json:"preferred_date"`
	Notes         string     `json:"notes"`
}

// PickupResponse is the API representation of a pickup request
type PickupResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
	Status        string     `json:"status"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	PhoneMismatch bool       `json:"phone_mismatch"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToPickupResponse maps a pickup request to its API shape
func ToPickupResponse(r *laundry.PickupRequest) *PickupResponse {
	return &PickupResponse{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		PreferredDate: r.PreferredDate,
		Status:        string(r.Status),
		CustomerID:    r.CustomerID,
		PhoneMismatch: r.PhoneMismatch,
		CreatedAt:     r.CreatedAt,
	}
}

// CreateContactQueryRequest is the public payload for the contact form
type CreateContactQueryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactQueryResponse is the API representation of a contact query
type ContactQueryResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	AssignedTo string     `json:"assigned_to,omitempty"`
	Response   string     `json:"response,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToContactQueryResponse maps a contact query to its API shape
func ToContactQueryResponse(q *laundry.ContactQuery) *ContactQueryResponse {
	return &ContactQueryResponse{
		ID:         q.ID,
		Name:       q.Name,
		Email:      q.Email,
		Subject:    q.Subject,
		Message:    q.Message,
		Priority:   string(q.Priority),
		Status:     string(q.Status),
		AssignedTo: q.AssignedTo,
		Response:   q.Response,
		ResolvedAt: q.ResolvedAt,
		CreatedAt:  q.CreatedAt,
	}
}

// WashingTypeRequest is the payload for creating a washing type
type WashingTypeRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// WashingTypeResponse is the API representation of a washing type
type WashingTypeResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Amount string    `json:"amount"`
}

// WashingWorkResponse is the API representation of a washing work record
type WashingWorkResponse struct {
	ID            uuid.UUID  `json:"id"`
	OrderID       uuid.UUID  `json:"order_id"`
	OrderLineID   uuid.UUID  `json:"order_line_id"`
	WashingTypeID uuid.UUID  `json:"washing_type_id"`
	Status        string     `json:"status"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// ToWashingWorkResponse maps a washing work record to its API shape
func ToWashingWorkResponse(w *laundry.WashingWork) *WashingWorkResponse {
	return &WashingWorkResponse{
		ID:            w.ID,
		OrderID:       w.OrderID,
		OrderLineID:   w.OrderLineID,
		WashingTypeID: w.WashingTypeID,
		Status:        string(w.Status),
		StartedAt:     w.StartedAt,
		CompletedAt:   w.CompletedAt,
	}
}

// CustomerResponse is the API representation of a customer
type CustomerResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
}

// ToCustomerResponse maps a customer to its API shape
func ToCustomerResponse(c *laundry.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}
