package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/dto"
	"github.com/vorsorgeapp/pension_backend/internal/middleware"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

// rateHandler handles HTTP requests related to stored exchange rates.
type rateHandler struct {
	rateStore portssvc.RateStoreSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateStoreSvcFacade) *rateHandler {
	return &rateHandler{
		rateStore: rs,
	}
}

// registerRateRoutes registers routes related to stored exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateStore portssvc.RateStoreSvcFacade) {
	h := newRateHandler(rateStore)

	rates := rg.Group("/rates")
	{
		rates.GET("/:currency", h.listRates)
		rates.GET("/:currency/closest", h.getClosestRate)
	}
}

// parseDateParam parses a YYYY-MM-DD query parameter.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " query parameter is required (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a YYYY-MM-DD date"})
		return time.Time{}, false
	}
	return date, true
}

// listRates godoc
// @Summary List stored rates for a currency
// @Description Retrieves all stored rates for the currency within [from, to], ascending by date
// @Tags rates
// @Produce  json
// @Param   currency path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to   query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code or date format"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /rates/{currency} [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency := c.Param("currency")
	if len(currency) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

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

	rates, err := h.rateStore.ListRates(c.Request.Context(), currency, from, to)
	if err != nil {
		logger.Error("Failed to list rates", slog.String("currency", currency), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getClosestRate godoc
// @Summary Get the closest stored rate
// @Description Retrieves the rate for the exact date, falling back to the adjacent days (later neighbour preferred)
// @Tags rates
// @Produce  json
// @Param   currency path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   date query string true "Requested date (YYYY-MM-DD)"
// @Success 200 {object} dto.ClosestRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code or date format"
// @Failure 404 {object} map[string]string "No rate within a day of the requested date"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Security BearerAuth
// @Router /rates/{currency}/closest [get]
func (h *rateHandler) getClosestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency := c.Param("currency")
	if len(currency) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	rate, err := h.rateStore.GetClosestRate(c.Request.Context(), currency, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No rate available within a day of the requested date"})
			return
		}
		logger.Error("Failed to get closest rate", slog.String("currency", currency), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ClosestRateResponse{
		ExchangeRateResponse: dto.ToExchangeRateResponse(rate),
		RequestedDate:        date,
		SubstitutedDay:       !busday.DateOnly(rate.RateDate).Equal(busday.DateOnly(date)),
	})
}
