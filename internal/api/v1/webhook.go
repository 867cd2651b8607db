package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentdesk/rentdesk/internal/api/dto"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/service"
)

// WebhookHandler receives inbound payment events from payment gateways
type WebhookHandler struct {
	reconciler service.ReconciliationService
	log        *logger.Logger
}

func NewWebhookHandler(reconciler service.ReconciliationService, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, log: log}
}

// HandlePaymentEvent processes a gateway payment notification. The provider
// path segment is used when the payload omits the source field.
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	var req dto.WebhookPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if req.Source == "" {
		req.Source = c.Param("provider")
	}

	event, err := req.ToPaymentEvent()
	if err != nil {
		h.log.Error("Failed to normalize payment event", "error", err, "source", req.Source)
		c.Error(err)
		return
	}

	resp, err := h.reconciler.ProcessPayment(c.Request.Context(), event)
	if err != nil {
		h.log.Error("Failed to reconcile payment", "error", err, "external_id", event.ExternalID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
