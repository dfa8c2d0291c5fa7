package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kondaas/quotation-backend/internal/application/state"
	"github.com/kondaas/quotation-backend/internal/domain/quotation"
	"github.com/kondaas/quotation-backend/internal/domain/settings"
	"github.com/kondaas/quotation-backend/internal/infrastructure/logger"
	"github.com/kondaas/quotation-backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// StateService is the application service consumed by the state handlers.
type StateService interface {
	LoadState(ctx context.Context) state.AppState
	SaveSettings(ctx context.Context, cfg settings.Settings) (settings.Settings, error)
	SaveQuotation(ctx context.Context, q quotation.Quotation) error
	DeleteQuotation(ctx context.Context, id string) error
}

// StateHandler serves the application state endpoints
type StateHandler struct {
	BaseHandler
	service StateService
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(service StateService) *StateHandler {
	return &StateHandler{service: service}
}

// GetState handles GET /api/v1/state
// Returns the reconciled settings, all quotations and the next quotation
// sequence number. This endpoint never fails: storage trouble degrades to
// the default catalog.
func (h *StateHandler) GetState(c *gin.Context) {
	h.Success(c, h.service.LoadState(c.Request.Context()))
}

// UpdateSettings handles PUT /api/v1/settings
func (h *StateHandler) UpdateSettings(c *gin.Context) {
	var cfg settings.Settings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		logger.GetGinLogger(c).Warn("Rejected settings payload", zap.Error(err))
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid settings payload: "+err.Error())
		return
	}

	saved, err := h.service.SaveSettings(c.Request.Context(), cfg)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, saved)
}

// SaveQuotation handles PUT /api/v1/quotations/:id
func (h *StateHandler) SaveQuotation(c *gin.Context) {
	var uri dto.QuotationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, "Invalid quotation id")
		return
	}

	var q quotation.Quotation
	if err := c.ShouldBindJSON(&q); err != nil {
		logger.GetGinLogger(c).Warn("Rejected quotation payload", zap.Error(err))
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid quotation payload: "+err.Error())
		return
	}

	if q.ID == "" {
		q.ID = uri.ID
	}
	if q.ID != uri.ID {
		h.BadRequest(c, "Quotation id in body does not match path")
		return
	}

	if err := h.service.SaveQuotation(c.Request.Context(), q); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, q)
}

// DeleteQuotation handles DELETE /api/v1/quotations/:id
func (h *StateHandler) DeleteQuotation(c *gin.Context) {
	var uri dto.QuotationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, "Invalid quotation id")
		return
	}

	if err := h.service.DeleteQuotation(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
