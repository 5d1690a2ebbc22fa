package laundry

import (
	"context"
	"errors"
	"time"

	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService manages laundry orders from intake through delivery
type OrderService struct {
	orderRepo    laundry.OrderRepository
	customerRepo laundry.CustomerRepository
	workRepo     laundry.WashingWorkRepository
	productRepo  catalog.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo laundry.OrderRepository,
	customerRepo laundry.CustomerRepository,
	workRepo laundry.WashingWorkRepository,
	productRepo catalog.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		workRepo:     workRepo,
		productRepo:  productRepo,
	}
}

// Create creates a draft order from a counter intake
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Customer not found")
		}
		return nil, err
	}

	order, err := laundry.NewLaundryOrder(req.CustomerID)
	if err != nil {
		return nil, err
	}
	order.Notes = req.Notes

	if err := s.addLines(ctx, order, req.Lines); err != nil {
		return nil, err
	}

	number, err := s.orderRepo.GenerateOrderNumber(ctx, time.Now().Year())
	if err != nil {
		return nil, err
	}
	order.OrderNumber = number

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// CreateFromPOS records an order for a laundry sale closed at the POS
// terminal. The customer is found or created by email, and intake is
// idempotent per POS reference: replaying the same close returns the
// existing order instead of duplicating it.
func (s *OrderService) CreateFromPOS(ctx context.Context, req PosIntakeRequest) (*OrderResponse, error) {
	existing, err := s.orderRepo.FindByPosReference(ctx, req.PosReference)
	if err == nil {
		return ToOrderResponse(existing), nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	customer, err := s.findOrCreateCustomer(ctx, req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		return nil, err
	}

	order, err := laundry.NewLaundryOrder(customer.ID)
	if err != nil {
		return nil, err
	}
	order.PosReference = req.PosReference

	if err := s.addLines(ctx, order, req.Lines); err != nil {
		return nil, err
	}

	number, err := s.orderRepo.GenerateOrderNumber(ctx, time.Now().Year())
	if err != nil {
		return nil, err
	}
	order.OrderNumber = number

	// POS sales are already paid, so the order skips draft
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	if err := s.createWorks(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// GetByID retrieves an order with its lines
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List retrieves orders matching the filter
func (s *OrderService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[OrderResponse], error) {
	page, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}
	items := make([]OrderResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToOrderResponse(&page.Items[i]))
	}
	return shared.Paginated[OrderResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Confirm confirms a draft order and opens one washing work record
// per line
func (s *OrderService) Confirm(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	if err := s.createWorks(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// Transition moves an order to the requested status
func (s *OrderService) Transition(ctx context.Context, id uuid.UUID, target laundry.OrderStatus) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch target {
	case laundry.OrderStatusProcess:
		err = order.StartProcessing()
	case laundry.OrderStatusDone:
		err = order.MarkDone()
	case laundry.OrderStatusDelivery:
		err = order.Deliver()
	case laundry.OrderStatusCancelled:
		err = order.Cancel()
	default:
		err = shared.NewDomainError("INVALID_STATUS_TRANSITION", "Unsupported target status")
	}
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// ListWorks retrieves the washing work records of an order
func (s *OrderService) ListWorks(ctx context.Context, orderID uuid.UUID) ([]WashingWorkResponse, error) {
	works, err := s.workRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	responses := make([]WashingWorkResponse, 0, len(works))
	for i := range works {
		responses = append(responses, *ToWashingWorkResponse(&works[i]))
	}
	return responses, nil
}

// StartWork moves a washing work record into progress
func (s *OrderService) StartWork(ctx context.Context, workID uuid.UUID) (*WashingWorkResponse, error) {
	work, err := s.workRepo.FindByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if err := work.Start(); err != nil {
		return nil, err
	}
	if err := s.workRepo.Save(ctx, work); err != nil {
		return nil, err
	}
	return ToWashingWorkResponse(work), nil
}

// CompleteWork finishes a washing work record
func (s *OrderService) CompleteWork(ctx context.Context, workID uuid.UUID) (*WashingWorkResponse, error) {
	work, err := s.workRepo.FindByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if err := work.Complete(); err != nil {
		return nil, err
	}
	if err := s.workRepo.Save(ctx, work); err != nil {
		return nil, err
	}
	return ToWashingWorkResponse(work), nil
}

func (s *OrderService) addLines(ctx context.Context, order *laundry.LaundryOrder, lines []OrderLineRequest) error {
	for _, line := range lines {
		qty, err := decimal.NewFromString(line.Quantity)
		if err != nil {
			return shared.NewDomainError("INVALID_LINE", "Invalid quantity")
		}

		// the live catalog price applies unless the intake names one
		var price decimal.Decimal
		if line.UnitPrice != "" {
			price, err = decimal.NewFromString(line.UnitPrice)
			if err != nil {
				return shared.NewDomainError("INVALID_LINE", "Invalid unit price")
			}
		} else {
			product, err := s.productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("INVALID_LINE", "Order line product not found")
				}
				return err
			}
			price = product.ListPrice
		}

		if err := order.AddLine(line.ProductID, line.Description, line.WashingTypeID, qty, price); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) createWorks(ctx context.Context, order *laundry.LaundryOrder) error {
	works := make([]laundry.WashingWork, 0, len(order.Lines))
	for i := range order.Lines {
		line := &order.Lines[i]
		works = append(works, *laundry.NewWashingWork(order.ID, line.ID, line.WashingTypeID))
	}
	return s.workRepo.SaveAll(ctx, works)
}

func (s *OrderService) findOrCreateCustomer(ctx context.Context, name, email, phone string) (*laundry.Customer, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err == nil {
		customer.UpdateContact(phone, "")
		if err := s.customerRepo.Save(ctx, customer); err != nil {
			return nil, err
		}
		return customer, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	customer, err = laundry.NewCustomer(name, email, phone, "")
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
