package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/service"
	"github.com/rentdesk/rentdesk/internal/types"
)

// PaymentHandler exposes read access to recorded payment transactions
type PaymentHandler struct {
	reconciler service.ReconciliationService
	log        *logger.Logger
}

func NewPaymentHandler(reconciler service.ReconciliationService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{reconciler: reconciler, log: log}
}

func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Transaction ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	txn, err := h.reconciler.GetTransaction(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get transaction", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	var filter types.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	transactions, err := h.reconciler.ListTransactions(c.Request.Context(), &filter)
	if err != nil {
		h.log.Error("Failed to list transactions", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": transactions})
}

// ListUnlinked returns completed transactions that did not match any invoice,
// the manual reconciliation queue
func (h *PaymentHandler) ListUnlinked(c *gin.Context) {
	transactions, err := h.reconciler.ListUnlinked(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list unlinked transactions", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": transactions})
}
