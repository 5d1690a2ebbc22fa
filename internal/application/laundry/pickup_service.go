package laundry

import (
	"context"
	"errors"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PickupService handles pickup requests from the public site
type PickupService struct {
	pickupRepo   laundry.PickupRepository
	customerRepo laundry.CustomerRepository
	mailer       Mailer
	logger       *zap.Logger
}

// NewPickupService creates a new PickupService
func NewPickupService(
	pickupRepo laundry.PickupRepository,
	customerRepo laundry.CustomerRepository,
	mailer Mailer,
	logger *zap.Logger,
) *PickupService {
	return &PickupService{
		pickupRepo:   pickupRepo,
		customerRepo: customerRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// Create records a pickup request submitted from the public form.
// Matching against existing customers is by email only; a differing
// phone number flags the request instead of rejecting it. The
// acknowledgement email is best effort and never fails the request.
func (s *PickupService) Create(ctx context.Context, req CreatePickupRequest) (*PickupResponse, error) {
	request, err := laundry.NewPickupRequest(req.Name, req.Email, req.Phone, req.Address, req.PreferredDate)
	if err != nil {
		return nil, err
	}
	request.Notes = req.Notes

	customer, err := s.customerRepo.FindByEmail(ctx, request.Email)
	if err == nil {
		request.AttachCustomer(customer)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.pickupRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendPickupAcknowledgement(request); err != nil {
			s.logger.Warn("pickup acknowledgement email failed",
				zap.String("email", request.Email), zap.Error(err))
		}
	}
	return ToPickupResponse(request), nil
}

// GetByID retrieves a pickup request
func (s *PickupService) GetByID(ctx context.Context, id uuid.UUID) (*PickupResponse, error) {
	request, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPickupResponse(request), nil
}

// List retrieves pickup requests matching the filter
func (s *PickupService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[PickupResponse], error) {
	page, err := s.pickupRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[PickupResponse]{}, err
	}
	items := make([]PickupResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToPickupResponse(&page.Items[i]))
	}
	return shared.Paginated[PickupResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// MarkContacted records that an operator reached out
func (s *PickupService) MarkContacted(ctx context.Context, id uuid.UUID) (*PickupResponse, error) {
	return s.update(ctx, id, (*laundry.PickupRequest).MarkContacted)
}

// Complete closes a request after the pickup happened
func (s *PickupService) Complete(ctx context.Context, id uuid.UUID) (*PickupResponse, error) {
	return s.update(ctx, id, (*laundry.PickupRequest).Complete)
}

// Cancel closes a request without a pickup
func (s *PickupService) Cancel(ctx context.Context, id uuid.UUID) (*PickupResponse, error) {
	return s.update(ctx, id, (*laundry.PickupRequest).Cancel)
}

func (s *PickupService) update(ctx context.Context, id uuid.UUID, op func(*laundry.PickupRequest) error) (*PickupResponse, error) {
	request, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(request); err != nil {
		return nil, err
	}
	if err := s.pickupRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	return ToPickupResponse(request), nil
}
