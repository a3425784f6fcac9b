package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adjaoko/app/dto"
	"adjaoko/app/services"
)

// PriceHandler handles the price dashboard endpoints.
type PriceHandler struct {
	prices *services.PriceService
}

// NewPriceHandler creates a new price handler.
func NewPriceHandler(prices *services.PriceService) *PriceHandler {
	return &PriceHandler{prices: prices}
}

// GetPrices returns the dashboard prices, cache first.
func (h *PriceHandler) GetPrices(c *gin.Context) {
	prices, lastSync := h.prices.Load(c.Request.Context())
	respondJSON(c, http.StatusOK, dto.PricesResponse{
		Prices:   prices,
		LastSync: lastSync,
	})
}

// Refresh triggers an explicit price pull.
func (h *PriceHandler) Refresh(c *gin.Context) {
	prices, lastSync := h.prices.Refresh(c.Request.Context())
	respondJSON(c, http.StatusOK, dto.PricesResponse{
		Prices:   prices,
		LastSync: lastSync,
	})
}
