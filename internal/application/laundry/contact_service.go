package laundry

import (
	"context"
	"errors"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer sends the transactional mails of the laundry workflows.
/// Sending is always best effort: a mail failure never rolls back the
// state change that triggered it.
type Mailer interface {
	SendPickupAcknowledgement(request *laundry.PickupRequest) error
	SendQueryReceived(query *laundry.ContactQuery) error
	SendQueryResponse(query *laundry.ContactQuery) error
	SendPendingChangesDigest(to string, services []PendingDigestEntry) error
}

// PendingDigestEntry is one line of the daily pending-changes digest
type PendingDigestEntry struct {
	ServiceName string
	Published   bool
}

// ContactService triages contact queries from the public site
type ContactService struct {
	queryRepo    laundry.ContactQueryRepository
	customerRepo laundry.CustomerRepository
	mailer       Mailer
	logger       *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(
	queryRepo laundry.ContactQueryRepository,
	customerRepo laundry.CustomerRepository,
	mailer Mailer,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		queryRepo:    queryRepo,
		customerRepo: customerRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// Create records a query from the public contact form and sends the
// received acknowledgement.
func (s *ContactService) Create(ctx context.Context, req CreateContactQueryRequest) (*ContactQueryResponse, error) {
	query, err := laundry.NewContactQuery(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByEmail(ctx, query.Email)
	if err == nil {
		query.CustomerID = &customer.ID
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.queryRepo.Save(ctx, query); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendQueryReceived(query); err != nil {
			s.logger.Warn("query received email failed",
				zap.String("email", query.Email), zap.Error(err))
		}
	}
	return ToContactQueryResponse(query), nil
}

// GetByID retrieves a contact query
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*ContactQueryResponse, error) {
	query, err := s.queryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToContactQueryResponse(query), nil
}

// List retrieves contact queries matching the filter
func (s *ContactService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[ContactQueryResponse], error) {
	page, err := s.queryRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[ContactQueryResponse]{}, err
	}
	items := make([]ContactQueryResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToContactQueryResponse(&page.Items[i]))
	}
	return shared.Paginated[ContactQueryResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Assign hands the query to an operator
func (s *ContactService) Assign(ctx context.Context, id uuid.UUID, operator string) (*ContactQueryResponse, error) {
	query, err := s.queryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := query.Assign(operator); err != nil {
		return nil, err
	}
	if err := s.queryRepo.Save(ctx, query); err != nil {
		return nil, err
	}
	return ToContactQueryResponse(query), nil
}

// SetPriority re-triages the query
func (s *ContactService) SetPriority(ctx context.Context, id uuid.UUID, priority laundry.QueryPriority) (*ContactQueryResponse, error) {
	query, err := s.queryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := query.SetPriority(priority); err != nil {
		return nil, err
	}
	if err := s.queryRepo.Save(ctx, query); err != nil {
		return nil, err
	}
	return ToContactQueryResponse(query), nil
}

// Resolve records the response, marks the query resolved and mails
// the response to the submitter.
func (s *ContactService) Resolve(ctx context.Context, id uuid.UUID, response string) (*ContactQueryResponse, error) {
	query, err := s.queryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := query.Resolve(response); err != nil {
		return nil, err
	}
	if err := s.queryRepo.Save(ctx, query); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendQueryResponse(query); err != nil {
			s.logger.Warn("query response email failed",
				zap.String("email", query.Email), zap.Error(err))
		}
	}
	return ToContactQueryResponse(query), nil
}

// Close ends the query's lifecycle
func (s *ContactService) Close(ctx context.Context, id uuid.UUID) (*ContactQueryResponse, error) {
	query, err := s.queryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := query.Close(); err != nil {
		return nil, err
	}
	if err := s.queryRepo.Save(ctx, query); err != nil {
		return nil, err
	}
	return ToContactQueryResponse(query), nil
}
