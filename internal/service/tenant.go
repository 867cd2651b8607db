package service

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/types"
)

// TenantService manages renters
type TenantService interface {
	CreateTenant(ctx context.Context, req *dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error)
	UpdateTenant(ctx context.Context, id string, req *dto.UpdateTenantRequest) (*dto.TenantResponse, error)
	ListTenants(ctx context.Context, filter *types.QueryFilter) (*dto.ListTenantsResponse, error)
	DeleteTenant(ctx context.Context, id string) error
}

type tenantService struct {
	ServiceParams
}

// NewTenantService creates a new tenant service
func NewTenantService(params ServiceParams) TenantService {
	return &tenantService{
		ServiceParams: params,
	}
}

func (s *tenantService) CreateTenant(ctx context.Context, req *dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.UnitID != "" {
		// Unit lookup is account scoped; a unit id belonging to another
		// account fails here.
		if _, err := s.UnitRepo.Get(ctx, req.UnitID); err != nil {
			return nil, err
		}
	}

	t := req.ToTenant(ctx)
	if err := s.TenantRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error) {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, id string, req *dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.UnitID != nil {
		if *req.UnitID != "" {
			if _, err := s.UnitRepo.Get(ctx, *req.UnitID); err != nil {
				return nil, err
			}
		}
		t.UnitID = *req.UnitID
	}
	if req.PhoneNumber != nil {
		t.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		t.Email = *req.Email
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.TenantRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) ListTenants(ctx context.Context, filter *types.QueryFilter) (*dto.ListTenantsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	tenants, err := s.TenantRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.TenantRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListTenantsResponse{
		Items: make([]*dto.TenantResponse, len(tenants)),
	}
	for i, t := range tenants {
		resp.Items[i] = &dto.TenantResponse{Tenant: t}
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, id string) error {
	return s.TenantRepo.Delete(ctx, id)
}
