package laundry

import (
	"context"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateCustomerRequest is the payload for creating a customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerService manages laundry customers
type CustomerService struct {
	repo laundry.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo laundry.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create creates a new customer. Email must be unique.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := laundry.NewCustomer(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if existing, err := s.repo.FindByEmail(ctx, customer.Email); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// GetByID retrieves a customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// List retrieves customers matching the filter
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[CustomerResponse], error) {
	page, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}
	items := make([]CustomerResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToCustomerResponse(&page.Items[i]))
	}
	return shared.Paginated[CustomerResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}
