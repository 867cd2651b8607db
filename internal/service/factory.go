package service

import (
	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/domain/account"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/notification"
	"github.com/rentdesk/rentdesk/internal/domain/payment"
	"github.com/rentdesk/rentdesk/internal/domain/property"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	"github.com/rentdesk/rentdesk/internal/domain/unit"
	"github.com/rentdesk/rentdesk/internal/domain/user"
	"github.com/rentdesk/rentdesk/internal/idempotency"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/sms"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Collaborators
	SmsClient     sms.Client
	IdempotencyGn *idempotency.Generator

	// Repositories
	AccountRepo      account.Repository
	PropertyRepo     property.Repository
	UnitRepo         unit.Repository
	TenantRepo       tenant.Repository
	InvoiceRepo      invoice.Repository
	PaymentRepo      payment.Repository
	NotificationRepo notification.Repository
	UserRepo         user.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	smsClient sms.Client,
	idempotencyGn *idempotency.Generator,
	accountRepo account.Repository,
	propertyRepo property.Repository,
	unitRepo unit.Repository,
	tenantRepo tenant.Repository,
	invoiceRepo invoice.Repository,
	paymentRepo payment.Repository,
	notificationRepo notification.Repository,
	userRepo user.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		DB:               db,
		SmsClient:        smsClient,
		IdempotencyGn:    idempotencyGn,
		AccountRepo:      accountRepo,
		PropertyRepo:     propertyRepo,
		UnitRepo:         unitRepo,
		TenantRepo:       tenantRepo,
		InvoiceRepo:      invoiceRepo,
		PaymentRepo:      paymentRepo,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
	}
}
