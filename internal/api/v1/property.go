package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentdesk/rentdesk/internal/api/dto"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/service"
	"github.com/rentdesk/rentdesk/internal/types"
)

type PropertyHandler struct {
	service service.PropertyService
	log     *logger.Logger
}

func NewPropertyHandler(service service.PropertyService, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{service: service, log: log}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProperty(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create property", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Property ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get property", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListProperties(c.Request.Context(), &filter)
	if err != nil {
		h.log.Error("Failed to list properties", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Property ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete property", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PropertyHandler) CreateUnit(c *gin.Context) {
	propertyID := c.Param("id")
	if propertyID == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Property ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateUnit(c.Request.Context(), propertyID, &req)
	if err != nil {
		h.log.Error("Failed to create unit", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PropertyHandler) ListUnits(c *gin.Context) {
	propertyID := c.Param("id")
	if propertyID == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Property ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListUnits(c.Request.Context(), propertyID, &filter)
	if err != nil {
		h.log.Error("Failed to list units", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
