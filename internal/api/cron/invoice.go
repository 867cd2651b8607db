package cron

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/service"
)

// InvoiceHandler handles invoice related cron jobs
type InvoiceHandler struct {
	reminderService service.ReminderService
	logger          *logger.Logger
}

// NewInvoiceHandler creates a new cron invoice handler
func NewInvoiceHandler(reminderService service.ReminderService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		reminderService: reminderService,
		logger:          logger,
	}
}

// SendRentReminders sends due-soon and overdue reminders for the caller's
// account
func (h *InvoiceHandler) SendRentReminders(c *gin.Context) {
	h.logger.Infow("starting rent reminder cron job")

	response, err := h.reminderService.SendRentReminders(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to send rent reminders",
			"error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// MarkOverdueInvoices flips sent invoices past their due date to overdue
func (h *InvoiceHandler) MarkOverdueInvoices(c *gin.Context) {
	h.logger.Infow("starting overdue invoice cron job")

	response, err := h.reminderService.MarkOverdueInvoices(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to mark overdue invoices",
			"error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
