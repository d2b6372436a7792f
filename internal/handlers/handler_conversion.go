package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/dto"
	"github.com/vorsorgeapp/pension_backend/internal/middleware"
)

// conversionHandler handles HTTP requests for ad-hoc currency conversions.
type conversionHandler struct {
	converter portssvc.ConverterSvc
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConverterSvc) *conversionHandler {
	return &conversionHandler{
		converter: cs,
	}
}

// registerConversionRoutes registers routes related to currency conversion.
func registerConversionRoutes(rg *gin.RouterGroup, converter portssvc.ConverterSvc) {
	h := newConversionHandler(converter)

	rg.POST("/conversions", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount on a given date via the base currency. When no rate is available the original amount is returned with usedFallback set.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion parameters"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Conversion failed"
// @Security BearerAuth
// @Router /conversions [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	converted, usedFallback, err := h.converter.Convert(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency, req.Date)
	if err != nil {
		logger.Error("Conversion failed",
			slog.String("from", req.FromCurrency),
			slog.String("to", req.ToCurrency),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:       converted,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Date:         req.Date,
		UsedFallback: usedFallback,
	})
}
