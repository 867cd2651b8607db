package service

import (
	"context"
	"testing"

	"github.com/rentdesk/rentdesk/internal/domain/account"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/testutil"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountScopeSuite struct {
	testutil.BaseServiceTestSuite
	service AccountScopeService
}

func TestAccountScopeService(t *testing.T) {
	suite.Run(t, new(AccountScopeSuite))
}

func (s *AccountScopeSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewAccountScopeService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		AccountRepo: s.GetStores().AccountRepo,
		TenantRepo:  s.GetStores().TenantRepo,
		InvoiceRepo: s.GetStores().InvoiceRepo,
	})
}

func (s *AccountScopeSuite) createAccount(id string, active bool, status types.Status) {
	s.NoError(s.GetStores().AccountRepo.Create(context.Background(), &account.Account{
		ID:     id,
		Name:   "Acme Rentals " + id,
		Active: active,
		Status: status,
	}))
}

func (s *AccountScopeSuite) TestResolveActiveAccount() {
	s.createAccount("acct_active", true, types.StatusPublished)

	ctx, err := s.service.Resolve(context.Background(), "acct_active")
	s.NoError(err)
	s.Equal("acct_active", types.GetAccountID(ctx))
	s.NoError(s.service.Verify(ctx))
}

func (s *AccountScopeSuite) TestResolveFailsClosedOnMissingID() {
	_, err := s.service.Resolve(context.Background(), "")
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AccountScopeSuite) TestResolveFailsClosedOnUnknownAccount() {
	_, err := s.service.Resolve(context.Background(), "acct_ghost")
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AccountScopeSuite) TestResolveFailsClosedOnInactiveAccount() {
	s.createAccount("acct_inactive", false, types.StatusPublished)

	_, err := s.service.Resolve(context.Background(), "acct_inactive")
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AccountScopeSuite) TestResolveFailsClosedOnArchivedAccount() {
	s.createAccount("acct_archived", true, types.StatusArchived)

	_, err := s.service.Resolve(context.Background(), "acct_archived")
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AccountScopeSuite) TestVerifyRejectsUnscopedContext() {
	err := s.service.Verify(context.Background())
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

// Cross-account isolation: rows created under one account are invisible to
// another, for direct lookups and list scans alike.
func (s *AccountScopeSuite) TestAccountDataIsolation() {
	s.createAccount("acct_a", true, types.StatusPublished)
	s.createAccount("acct_b", true, types.StatusPublished)

	ctxA, err := s.service.Resolve(context.Background(), "acct_a")
	s.NoError(err)
	ctxB, err := s.service.Resolve(context.Background(), "acct_b")
	s.NoError(err)

	t := &tenant.Tenant{
		ID:        "tnt_isolated",
		Name:      "Grace Njeri",
		BaseModel: types.GetDefaultBaseModel(ctxA),
	}
	s.NoError(s.GetStores().TenantRepo.Create(ctxA, t))

	inv := &invoice.Invoice{
		ID:            "inv_isolated",
		TenantID:      t.ID,
		InvoiceStatus: types.InvoiceStatusSent,
		Amount:        decimal.NewFromInt(10000),
		Currency:      "KES",
		BaseModel:     types.GetDefaultBaseModel(ctxA),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(ctxA, inv))

	// Owner sees the rows
	_, err = s.GetStores().TenantRepo.Get(ctxA, t.ID)
	s.NoError(err)
	_, err = s.GetStores().InvoiceRepo.Get(ctxA, inv.ID)
	s.NoError(err)

	// The other account sees nothing, by id or by scan
	_, err = s.GetStores().TenantRepo.Get(ctxB, t.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.GetStores().InvoiceRepo.Get(ctxB, inv.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	invoices, err := s.GetStores().InvoiceRepo.List(ctxB, &types.InvoiceFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
	})
	s.NoError(err)
	s.Empty(invoices)

	tenants, err := s.GetStores().TenantRepo.List(ctxB, types.NewNoLimitQueryFilter())
	s.NoError(err)
	s.Empty(tenants)
}
