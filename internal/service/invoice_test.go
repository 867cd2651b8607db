package service

import (
	"testing"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/testutil"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  InvoiceService
	testData struct {
		tenant *tenant.Tenant
	}
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		TenantRepo:  s.GetStores().TenantRepo,
		InvoiceRepo: s.GetStores().InvoiceRepo,
	})

	s.testData.tenant = &tenant.Tenant{
		ID:        "tnt_test_invoice",
		Name:      "Peter Otieno",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), s.testData.tenant))
}

func (s *InvoiceServiceSuite) createDraft(amount int64) *dto.InvoiceResponse {
	resp, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		TenantID: s.testData.tenant.ID,
		Amount:   decimal.NewFromInt(amount),
	})
	s.NoError(err)
	return resp
}

func (s *InvoiceServiceSuite) TestCreateInvoiceStartsAsDraft() {
	resp := s.createDraft(30000)
	s.Equal(types.InvoiceStatusDraft, resp.InvoiceStatus)
	s.Equal("KES", resp.Currency)
	s.NotEmpty(resp.InvoiceNumber)
	s.True(resp.AmountPaid.IsZero())
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRejectsUnknownTenant() {
	_, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		TenantID: "tnt_missing",
		Amount:   decimal.NewFromInt(1000),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRejectsNonPositiveAmount() {
	_, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		TenantID: s.testData.tenant.ID,
		Amount:   decimal.Zero,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestFinalizeInvoice() {
	draft := s.createDraft(30000)

	finalized, err := s.service.FinalizeInvoice(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, finalized.InvoiceStatus)

	// Finalizing twice is an invalid transition
	_, err = s.service.FinalizeInvoice(s.GetContext(), draft.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestDeleteInvoiceDraftOnly() {
	draft := s.createDraft(30000)
	s.NoError(s.service.DeleteInvoice(s.GetContext(), draft.ID))

	sent := s.createDraft(12000)
	_, err := s.service.FinalizeInvoice(s.GetContext(), sent.ID)
	s.NoError(err)

	err = s.service.DeleteInvoice(s.GetContext(), sent.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestListInvoices() {
	s.createDraft(30000)
	s.createDraft(15000)

	resp, err := s.service.ListInvoices(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)
}
