package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/dto"
	"github.com/vorsorgeapp/pension_backend/internal/middleware"
)

// conversionErrorHandler handles HTTP requests for the conversion error ledger.
type conversionErrorHandler struct {
	errorService portssvc.ConversionErrorSvcFacade
}

// newConversionErrorHandler creates a new conversionErrorHandler.
func newConversionErrorHandler(es portssvc.ConversionErrorSvcFacade) *conversionErrorHandler {
	return &conversionErrorHandler{
		errorService: es,
	}
}

// registerConversionErrorRoutes registers routes related to the conversion error ledger.
func registerConversionErrorRoutes(rg *gin.RouterGroup, errorService portssvc.ConversionErrorSvcFacade) {
	h := newConversionErrorHandler(errorService)

	errs := rg.Group("/conversion-errors")
	{
		errs.GET("", h.listUnresolved)
		errs.POST("/:errorID/resolve", h.resolve)
	}
}

// listUnresolved godoc
// @Summary List unresolved conversion errors
// @Description Retrieves conversions that could not find a usable rate, oldest first
// @Tags conversion-errors
// @Produce  json
// @Param   limit query int false "Maximum number of records to return (default 100)"
// @Success 200 {array} dto.ConversionErrorResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /conversion-errors [get]
func (h *conversionErrorHandler) listUnresolved(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := h.errorService.ListUnresolved(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list conversion errors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversion errors"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListConversionErrorResponse(records))
}

// resolve godoc
// @Summary Resolve a conversion error
// @Description Marks a ledger record resolved after the missing rate has been backfilled
// @Tags conversion-errors
// @Produce  json
// @Param   errorID path string true "Record ID"
// @Success 204 "Record resolved"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to resolve record"
// @Security BearerAuth
// @Router /conversion-errors/{errorID}/resolve [post]
func (h *conversionErrorHandler) resolve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	errorID := c.Param("errorID")

	if err := h.errorService.Resolve(c.Request.Context(), errorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversion error record not found"})
			return
		}
		logger.Error("Failed to resolve conversion error", slog.String("error_id", errorID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve conversion error"})
		return
	}

	logger.Info("Conversion error resolved", slog.String("error_id", errorID))
	c.Status(http.StatusNoContent)
}
