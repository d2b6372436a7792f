package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/dto"
	"github.com/vorsorgeapp/pension_backend/internal/middleware"
)

// etfPriceHandler handles HTTP requests for ETF price ingestion and lookup.
type etfPriceHandler struct {
	priceService portssvc.ETFPriceSvcFacade
}

// newETFPriceHandler creates a new etfPriceHandler.
func newETFPriceHandler(ps portssvc.ETFPriceSvcFacade) *etfPriceHandler {
	return &etfPriceHandler{
		priceService: ps,
	}
}

// registerETFPriceRoutes registers routes related to ETF prices.
func registerETFPriceRoutes(rg *gin.RouterGroup, priceService portssvc.ETFPriceSvcFacade) {
	h := newETFPriceHandler(priceService)

	prices := rg.Group("/etf-prices")
	{
		prices.POST("", h.ingestPrices)
		prices.GET("/:etfID", h.listPrices)
	}
}

// ingestPrices godoc
// @Summary Ingest ETF price observations
// @Description Converts a batch of vendor quotes into the base currency and stores them. Quotes that could not be converted keep their original value and are flagged.
// @Tags etf-prices
// @Accept  json
// @Produce  json
// @Param   batch body dto.IngestETFPricesRequest true "Price observations"
// @Success 200 {array} dto.ETFPriceIngestResultResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Ingestion failed"
// @Security BearerAuth
// @Router /etf-prices [post]
func (h *etfPriceHandler) ingestPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IngestETFPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IngestPrices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	results, err := h.priceService.IngestPrices(c.Request.Context(), req.ToDomainETFPriceObservations())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to ingest ETF prices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ingest prices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListETFPriceIngestResultResponse(results))
}

// listPrices godoc
// @Summary List stored prices for an ETF
// @Description Retrieves stored prices for the ETF within [from, to], ascending by date
// @Tags etf-prices
// @Produce  json
// @Param   etfID path string true "ETF identifier"
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to   query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ETFPriceResponse
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 500 {object} map[string]string "Failed to list prices"
// @Security BearerAuth
// @Router /etf-prices/{etfID} [get]
func (h *etfPriceHandler) listPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	etfID := c.Param("etfID")

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return
	}

	prices, err := h.priceService.ListPrices(c.Request.Context(), etfID, from, to)
	if err != nil {
		logger.Error("Failed to list ETF prices", slog.String("etf_id", etfID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list prices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListETFPriceResponse(prices))
}
