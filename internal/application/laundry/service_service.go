package laundry

import (
	"context"
	"errors"

	"github.com/feedygotech/laundry-backend/internal/domain/catalog"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ServiceService manages laundry services and their page content
type ServiceService struct {
	serviceRepo  laundry.ServiceRepository
	categoryRepo catalog.CategoryRepository
}

// NewServiceService creates a new ServiceService
func NewServiceService(serviceRepo laundry.ServiceRepository, categoryRepo catalog.CategoryRepository) *ServiceService {
	return &ServiceService{serviceRepo: serviceRepo, categoryRepo: categoryRepo}
}

// Create creates a new service. The given category is resolved to its
// top-level ancestor so sub-categories always map onto the service
// owning their tree; each top-level category carries at most one
// service.
func (s *ServiceService) Create(ctx context.Context, req CreateServiceRequest) (*ServiceResponse, error) {
	exists, err := s.serviceRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Service with this name already exists")
	}

	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CATEGORY_REQUIRED", "Catalog category not found")
		}
		return nil, err
	}
	top, err := category.TopLevelAncestor(func(id uuid.UUID) (*catalog.Category, error) {
		return s.categoryRepo.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.serviceRepo.FindByCategoryID(ctx, top.ID); err == nil {
		return nil, shared.NewDomainError("CATEGORY_TAKEN", "A service already exists for this category")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	service, err := laundry.NewService(req.Name, top.ID)
	if err != nil {
		return nil, err
	}
	if req.Tagline != "" || req.Description != "" || req.ImageURL != "" {
		if err := service.Update(req.Name, req.Tagline, req.Description, req.ImageURL); err != nil {
			return nil, err
		}
	}
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}
	return ToServiceResponse(service), nil
}

// GetByID retrieves a service by ID
func (s *ServiceService) GetByID(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToServiceResponse(service), nil
}

// GetBySlug retrieves a service by its URL slug
func (s *ServiceService) GetBySlug(ctx context.Context, slug string) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToServiceResponse(service), nil
}

// List retrieves all active services
func (s *ServiceService) List(ctx context.Context) ([]ServiceResponse, error) {
	services, err := s.serviceRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, *ToServiceResponse(&services[i]))
	}
	return responses, nil
}

// Update updates a service's presentation fields
func (s *ServiceService) Update(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service.Name != req.Name {
		exists, err := s.serviceRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Service with this name already exists")
		}
	}
	if err := service.Update(req.Name, req.Tagline, req.Description, req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}
	return ToServiceResponse(service), nil
}

// Archive hides a service from all listings
func (s *ServiceService) Archive(ctx context.Context, id uuid.UUID) error {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	service.Archive()
	return s.serviceRepo.Save(ctx, service)
}

// Delete removes a service and, by cascade, its snapshot rows
func (s *ServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.serviceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.serviceRepo.Delete(ctx, id)
}
