package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/dto"
	"github.com/vorsorgeapp/pension_backend/internal/middleware"
)

// syncHandler handles HTTP requests related to rate synchronization runs.
type syncHandler struct {
	syncService portssvc.RateSyncSvcFacade
}

// newSyncHandler creates a new syncHandler.
func newSyncHandler(ss portssvc.RateSyncSvcFacade) *syncHandler {
	return &syncHandler{
		syncService: ss,
	}
}

// registerSyncRoutes registers routes related to synchronization runs.
func registerSyncRoutes(rg *gin.RouterGroup, syncService portssvc.RateSyncSvcFacade) {
	h := newSyncHandler(syncService)

	sync := rg.Group("/sync")
	{
		sync.POST("/runs", h.triggerSync)
		sync.GET("/updates", h.listSyncUpdates)
		sync.GET("/updates/:updateID", h.getSyncUpdate)
	}
}

// triggerSync godoc
// @Summary Trigger a synchronization run
// @Description Starts a manual exchange rate synchronization for the given date range and currencies
// @Tags sync
// @Accept  json
// @Produce  json
// @Param   run body dto.TriggerSyncRequest true "Synchronization parameters"
// @Success 202 {object} dto.SyncUpdateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Synchronization failed to run"
// @Security BearerAuth
// @Router /sync/runs [post]
func (h *syncHandler) triggerSync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TriggerSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TriggerSync", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	triggeredBy, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Triggering user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to trigger synchronization",
		slog.String("update_type", req.UpdateType),
		slog.Any("currencies", req.Currencies),
	)

	update, err := h.syncService.Synchronize(c.Request.Context(), portssvc.SyncRequest{
		UpdateType:  domain.UpdateType(req.UpdateType),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Currencies:  req.Currencies,
		TriggeredBy: triggeredBy,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error triggering synchronization", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Synchronization run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Synchronization failed"})
		return
	}

	logger.Info("Synchronization run finished", slog.String("update_id", update.UpdateID), slog.String("status", string(update.Status)))
	c.JSON(http.StatusAccepted, dto.ToSyncUpdateResponse(update))
}

// listSyncUpdates godoc
// @Summary List recent synchronization runs
// @Description Retrieves the most recent runs including their missing dates, newest first
// @Tags sync
// @Produce  json
// @Param   limit query int false "Maximum number of runs to return (default 20)"
// @Success 200 {array} dto.SyncUpdateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list runs"
// @Security BearerAuth
// @Router /sync/updates [get]
func (h *syncHandler) listSyncUpdates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	updates, err := h.syncService.ListRecentSyncUpdates(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list sync updates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list synchronization runs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSyncUpdateResponse(updates))
}

// getSyncUpdate godoc
// @Summary Get one synchronization run
// @Description Retrieves a single run by ID
// @Tags sync
// @Produce  json
// @Param   updateID path string true "Run ID"
// @Success 200 {object} dto.SyncUpdateResponse
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Failed to retrieve run"
// @Security BearerAuth
// @Router /sync/updates/{updateID} [get]
func (h *syncHandler) getSyncUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	updateID := c.Param("updateID")

	update, err := h.syncService.GetSyncUpdate(c.Request.Context(), updateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Synchronization run not found"})
			return
		}
		logger.Error("Failed to get sync update", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve synchronization run"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncUpdateResponse(update))
}
