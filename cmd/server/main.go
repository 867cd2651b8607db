package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentdesk/rentdesk/internal/api"
	"github.com/rentdesk/rentdesk/internal/api/cron"
	v1 "github.com/rentdesk/rentdesk/internal/api/v1"
	"github.com/rentdesk/rentdesk/internal/cache"
	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/httpclient"
	"github.com/rentdesk/rentdesk/internal/idempotency"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/repository"
	"github.com/rentdesk/rentdesk/internal/service"
	"github.com/rentdesk/rentdesk/internal/sms"
	"github.com/rentdesk/rentdesk/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Initialize Fx application
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewEntClient,
			postgres.NewClient,

			// HTTP Client
			httpclient.NewDefaultClient,

			// SMS gateway
			sms.NewClient,

			// Idempotency
			idempotency.NewGenerator,
		),
	)

	// Repositories
	opts = append(opts,
		fx.Provide(
			repository.NewAccountRepository,
			repository.NewPropertyRepository,
			repository.NewUnitRepository,
			repository.NewTenantRepository,
			repository.NewInvoiceRepository,
			repository.NewPaymentRepository,
			repository.NewNotificationRepository,
			repository.NewUserRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewAccountScopeService,
			service.NewAccountService,
			service.NewAuthService,
			service.NewPropertyService,
			service.NewTenantService,
			service.NewInvoiceService,
			service.NewInvoiceMatcherService,
			service.NewNotificationService,
			service.NewReconciliationService,
			service.NewReminderService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	authService service.AuthService,
	accountService service.AccountService,
	propertyService service.PropertyService,
	tenantService service.TenantService,
	invoiceService service.InvoiceService,
	notificationService service.NotificationService,
	reconciliationService service.ReconciliationService,
	reminderService service.ReminderService,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(),
		Auth:         v1.NewAuthHandler(authService, logger),
		Account:      v1.NewAccountHandler(accountService, logger),
		Property:     v1.NewPropertyHandler(propertyService, logger),
		Tenant:       v1.NewTenantHandler(tenantService, logger),
		Invoice:      v1.NewInvoiceHandler(invoiceService, logger),
		Payment:      v1.NewPaymentHandler(reconciliationService, logger),
		Notification: v1.NewNotificationHandler(notificationService, logger),
		Webhook:      v1.NewWebhookHandler(reconciliationService, logger),
		CronInvoice:  cron.NewInvoiceHandler(reminderService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger, scope service.AccountScopeService) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, scope)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
