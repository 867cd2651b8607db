package repository

import (
	"github.com/rentdesk/rentdesk/internal/cache"
	"github.com/rentdesk/rentdesk/internal/domain/account"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/notification"
	"github.com/rentdesk/rentdesk/internal/domain/payment"
	"github.com/rentdesk/rentdesk/internal/domain/property"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	"github.com/rentdesk/rentdesk/internal/domain/unit"
	"github.com/rentdesk/rentdesk/internal/domain/user"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	entRepo "github.com/rentdesk/rentdesk/internal/repository/ent"
)

func NewAccountRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) account.Repository {
	return entRepo.NewAccountRepository(client, log, cache)
}

func NewPropertyRepository(client postgres.IClient, log *logger.Logger) property.Repository {
	return entRepo.NewPropertyRepository(client, log)
}

func NewUnitRepository(client postgres.IClient, log *logger.Logger) unit.Repository {
	return entRepo.NewUnitRepository(client, log)
}

func NewTenantRepository(client postgres.IClient, log *logger.Logger) tenant.Repository {
	return entRepo.NewTenantRepository(client, log)
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) invoice.Repository {
	return entRepo.NewInvoiceRepository(client, log)
}

func NewPaymentRepository(client postgres.IClient, log *logger.Logger) payment.Repository {
	return entRepo.NewPaymentRepository(client, log)
}

func NewNotificationRepository(client postgres.IClient, log *logger.Logger) notification.Repository {
	return entRepo.NewNotificationRepository(client, log)
}

func NewUserRepository(client postgres.IClient, log *logger.Logger) user.Repository {
	return entRepo.NewUserRepository(client, log)
}
