package laundry

import (
	"context"

	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WashingTypeService manages the washing type catalog
type WashingTypeService struct {
	repo laundry.WashingTypeRepository
}

// NewWashingTypeService creates a new WashingTypeService
func NewWashingTypeService(repo laundry.WashingTypeRepository) *WashingTypeService {
	return &WashingTypeService{repo: repo}
}

// Create creates a new washing type
func (s *WashingTypeService) Create(ctx context.Context, req WashingTypeRequest) (*WashingTypeResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invalid amount")
	}
	wt, err := laundry.NewWashingType(req.Name, amount)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, wt); err != nil {
		return nil, err
	}
	return toWashingTypeResponse(wt), nil
}

// List retrieves all washing types
func (s *WashingTypeService) List(ctx context.Context) ([]WashingTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]WashingTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, *toWashingTypeResponse(&types[i]))
	}
	return responses, nil
}

// Delete removes a washing type
func (s *WashingTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func toWashingTypeResponse(wt *laundry.WashingType) *WashingTypeResponse {
	return &WashingTypeResponse{
		ID:     wt.ID,
		Name:   wt.Name,
		Amount: wt.Amount.StringFixed(2),
	}
}
