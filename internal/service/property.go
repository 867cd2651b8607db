package service

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/types"
)

// PropertyService manages properties and their units
type PropertyService interface {
	CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error)
	ListProperties(ctx context.Context, filter *types.QueryFilter) (*dto.ListPropertiesResponse, error)
	DeleteProperty(ctx context.Context, id string) error

	CreateUnit(ctx context.Context, propertyID string, req *dto.CreateUnitRequest) (*dto.UnitResponse, error)
	ListUnits(ctx context.Context, propertyID string, filter *types.QueryFilter) (*dto.ListUnitsResponse, error)
}

type propertyService struct {
	ServiceParams
}

// NewPropertyService creates a new property service
func NewPropertyService(params ServiceParams) PropertyService {
	return &propertyService{
		ServiceParams: params,
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProperty(ctx)
	if err := s.PropertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &dto.PropertyResponse{Property: p}, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	p, err := s.PropertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PropertyResponse{Property: p}, nil
}

func (s *propertyService) ListProperties(ctx context.Context, filter *types.QueryFilter) (*dto.ListPropertiesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	properties, err := s.PropertyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.PropertyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPropertiesResponse{
		Items: make([]*dto.PropertyResponse, len(properties)),
	}
	for i, p := range properties {
		resp.Items[i] = &dto.PropertyResponse{Property: p}
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id string) error {
	return s.PropertyRepo.Delete(ctx, id)
}

func (s *propertyService) CreateUnit(ctx context.Context, propertyID string, req *dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The unit inherits its account from the owning property; resolving the
	// property under the caller's scope is what authorizes the write.
	if _, err := s.PropertyRepo.Get(ctx, propertyID); err != nil {
		return nil, err
	}

	u := req.ToUnit(ctx, propertyID)
	if err := s.UnitRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return &dto.UnitResponse{Unit: u}, nil
}

func (s *propertyService) ListUnits(ctx context.Context, propertyID string, filter *types.QueryFilter) (*dto.ListUnitsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	// Verify scope at the root owning entity before trusting the
	// denormalized account column on units.
	if _, err := s.PropertyRepo.Get(ctx, propertyID); err != nil {
		return nil, err
	}

	units, err := s.UnitRepo.ListByProperty(ctx, propertyID, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListUnitsResponse{
		Items: make([]*dto.UnitResponse, len(units)),
	}
	for i, u := range units {
		resp.Items[i] = &dto.UnitResponse{Unit: u}
	}
	resp.Pagination = types.NewPaginationResponse(len(units), filter.GetLimit(), filter.GetOffset())
	return resp, nil
}
