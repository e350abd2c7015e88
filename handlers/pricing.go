package handlers

import (
	"net/http"

	"agencysite/models"
	"agencysite/services/analytics"
	"agencysite/services/pricing"
	"agencysite/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves the catalog and the project cost calculator.
type PricingHandler struct {
	Service pricing.CatalogService
	Tracker *analytics.CalculatorTracker // optional
}

func NewPricingHandler(svc pricing.CatalogService, tracker *analytics.CalculatorTracker) *PricingHandler {
	return &PricingHandler{Service: svc, Tracker: tracker}
}

// GetPricingHandler returns the public price list.
func (h *PricingHandler) GetPricingHandler(c *gin.Context) {
	catalog, err := h.Service.GetCatalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// UpdatePricingHandler applies an admin's partial catalog update.
func (h *PricingHandler) UpdatePricingHandler(c *gin.Context) {
	var patch models.PricingUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	catalog, err := h.Service.UpdateCatalog(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// EstimateHandler prices a calculator selection.
func (h *PricingHandler) EstimateHandler(c *gin.Context) {
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	resp, err := h.Service.Estimate(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.Tracker != nil {
		if err := h.Tracker.Record(c.Request.Context(), sel); err != nil {
			getLogger(c).Warn("failed to record calculator usage", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CalculatorStatsHandler reports calculator usage counters.
func (h *PricingHandler) CalculatorStatsHandler(c *gin.Context) {
	if h.Tracker == nil {
		c.JSON(http.StatusOK, models.CalculatorStats{})
		return
	}
	stats, err := h.Tracker.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
