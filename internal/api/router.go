package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rentdesk/rentdesk/internal/api/cron"
	v1 "github.com/rentdesk/rentdesk/internal/api/v1"
	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/rest/middleware"
	"github.com/rentdesk/rentdesk/internal/service"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Auth         *v1.AuthHandler
	Account      *v1.AccountHandler
	Property     *v1.PropertyHandler
	Tenant       *v1.TenantHandler
	Invoice      *v1.InvoiceHandler
	Payment      *v1.PaymentHandler
	Notification *v1.NotificationHandler
	Webhook      *v1.WebhookHandler
	CronInvoice  *cron.InvoiceHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger, scope service.AccountScopeService) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	public := router.Group("/v1")
	{
		public.POST("/auth/signup", handlers.Auth.SignUp)
		public.POST("/auth/login", handlers.Auth.Login)
		public.POST("/accounts", handlers.Account.CreateAccount)
	}

	private := router.Group("/v1")
	private.Use(
		middleware.AuthenticateMiddleware(cfg, log),
		middleware.AccountScopeMiddleware(scope, log),
	)
	registerV1Routes(private, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/accounts/:id", handlers.Account.GetAccount)

	properties := router.Group("/properties")
	{
		properties.POST("", handlers.Property.CreateProperty)
		properties.GET("", handlers.Property.ListProperties)
		properties.GET("/:id", handlers.Property.GetProperty)
		properties.DELETE("/:id", handlers.Property.DeleteProperty)
		properties.POST("/:id/units", handlers.Property.CreateUnit)
		properties.GET("/:id/units", handlers.Property.ListUnits)
	}

	tenants := router.Group("/tenants")
	{
		tenants.POST("", handlers.Tenant.CreateTenant)
		tenants.GET("", handlers.Tenant.ListTenants)
		tenants.GET("/:id", handlers.Tenant.GetTenant)
		tenants.PUT("/:id", handlers.Tenant.UpdateTenant)
		tenants.DELETE("/:id", handlers.Tenant.DeleteTenant)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.POST("/:id/finalize", handlers.Invoice.FinalizeInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
	}

	payments := router.Group("/payments")
	{
		payments.GET("", handlers.Payment.ListTransactions)
		payments.GET("/unlinked", handlers.Payment.ListUnlinked)
		payments.GET("/:id", handlers.Payment.GetTransaction)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", handlers.Notification.ListNotifications)
	}

	// Payment gateways are configured with the account's API key, so the
	// webhook path carries account scope like any other request.
	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/payments/:provider", handlers.Webhook.HandlePaymentEvent)
	}

	// Scheduled sweeps are triggered over HTTP by an external scheduler.
	cronJobs := router.Group("/cron")
	{
		cronJobs.POST("/invoices/reminders", handlers.CronInvoice.SendRentReminders)
		cronJobs.POST("/invoices/overdue", handlers.CronInvoice.MarkOverdueInvoices)
	}
}
