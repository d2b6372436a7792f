// Package scheduler owns the background jobs of the backend: the daily rate
// synchronization, the retention sweep, and the startup catch-up pass.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/platform/config"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

// Scheduler wires the periodic jobs onto a cron runner.
type Scheduler struct {
	cron     *cron.Cron
	cfg      *config.Config
	services *portssvc.ServiceContainer
	logger   *slog.Logger
}

// New creates a Scheduler with its jobs registered but not yet running.
func New(cfg *config.Config, services *portssvc.ServiceContainer, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cfg:      cfg,
		services: services,
		logger:   logger.With(slog.String("component", "scheduler")),
	}

	s.cron = cron.New(cron.WithChain(
		cron.Recover(&cronLogger{logger: s.logger}),
	))

	if _, err := s.cron.AddFunc(cfg.DailySyncSpec, s.runDailySync); err != nil {
		return nil, fmt.Errorf("invalid daily sync schedule %q: %w", cfg.DailySyncSpec, err)
	}
	if _, err := s.cron.AddFunc(cfg.CleanupSpec, s.runCleanup); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", cfg.CleanupSpec, err)
	}

	return s, nil
}

// Start launches the cron runner and kicks off the startup catch-up pass.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.logger.Info("Scheduler started",
		slog.String("daily_sync_spec", s.cfg.DailySyncSpec),
		slog.String("cleanup_spec", s.cfg.CleanupSpec),
	)

	go s.runStartupCatchup(ctx)
}

// Stop halts the cron runner and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Scheduler stopped")
}

// runDailySync performs the scheduled daily synchronization and records the
// attempt in the daily tracking ledger.
func (s *Scheduler) runDailySync() {
	ctx := context.Background()
	s.logger.Info("Daily synchronization starting")

	update, err := s.services.RateSync.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeScheduledDaily,
	})
	if err != nil {
		s.logger.Error("Daily synchronization failed", slog.String("error", err.Error()))
		s.markAttempt(ctx, false, "daily sync failed: "+err.Error())
		return
	}

	s.logger.Info("Daily synchronization finished",
		slog.String("update_id", update.UpdateID),
		slog.String("status", string(update.Status)),
		slog.Int("missing_dates", len(update.MissingDates)),
	)
	s.markAttempt(ctx, runFoundData(update), "")
}

// runStartupCatchup closes the gap between the stored watermark and today.
// The tracking ledger suppresses redundant passes on restart loops and over
// weekends when no new data can exist.
func (s *Scheduler) runStartupCatchup(ctx context.Context) {
	watermark := s.oldestWatermark(ctx)

	due, err := s.services.Tracking.ShouldAttempt(ctx, domain.TrackingCategoryExchangeRates, watermark)
	if err != nil {
		s.logger.Error("Catch-up eligibility check failed", slog.String("error", err.Error()))
		return
	}
	if !due {
		s.logger.Info("Catch-up pass not due, skipping")
		return
	}

	s.logger.Info("Startup catch-up pass starting", slog.Time("watermark", watermark))
	update, err := s.services.RateSync.Synchronize(ctx, portssvc.SyncRequest{
		UpdateType: domain.UpdateTypeStartupCatchup,
	})
	if err != nil {
		s.logger.Error("Startup catch-up pass failed", slog.String("error", err.Error()))
		s.markAttempt(ctx, false, "startup catch-up failed: "+err.Error())
		return
	}

	s.logger.Info("Startup catch-up pass finished",
		slog.String("update_id", update.UpdateID),
		slog.String("status", string(update.Status)),
	)
	s.markAttempt(ctx, runFoundData(update), "")
}

// runCleanup sweeps expired tracking rows and completed run records.
func (s *Scheduler) runCleanup() {
	ctx := context.Background()

	deletedTracking, err := s.services.Tracking.CleanupTracking(ctx, s.cfg.TrackingRetentionDays)
	if err != nil {
		s.logger.Error("Tracking cleanup failed", slog.String("error", err.Error()))
	}

	deletedUpdates, err := s.services.RateSync.CleanupSyncUpdates(ctx, s.cfg.UpdateRetentionDays)
	if err != nil {
		s.logger.Error("Sync update cleanup failed", slog.String("error", err.Error()))
	}

	s.logger.Info("Retention sweep finished",
		slog.Int64("deleted_tracking_rows", deletedTracking),
		slog.Int64("deleted_sync_updates", deletedUpdates),
	)
}

// oldestWatermark returns the oldest latest-stored-date across the configured
// currencies, so the catch-up decision considers the currency furthest behind.
func (s *Scheduler) oldestWatermark(ctx context.Context) time.Time {
	var oldest time.Time
	for _, currency := range s.cfg.SyncCurrencies {
		latest, err := s.services.RateStore.LatestRateDate(ctx, currency)
		if err != nil {
			s.logger.Warn("No watermark for currency", slog.String("currency", currency), slog.String("error", err.Error()))
			continue
		}
		if oldest.IsZero() || latest.Before(oldest) {
			oldest = latest
		}
	}
	return oldest
}

// runFoundData reports whether a finished run actually produced data. A
// synthetic no-op run completes with no currencies and fetched nothing, so
// it must not be recorded as a day where data was found.
func runFoundData(update *domain.SyncUpdate) bool {
	return update.Status == domain.SyncStatusCompleted &&
		len(update.Currencies) > 0 &&
		len(update.MissingDates) == 0
}

func (s *Scheduler) markAttempt(ctx context.Context, dataFound bool, notes string) {
	today := busday.DateOnly(time.Now().UTC())
	if _, err := s.services.Tracking.MarkAttempted(ctx, today, domain.TrackingCategoryExchangeRates, dataFound, notes); err != nil {
		s.logger.Warn("Failed to record sync attempt", slog.String("error", err.Error()))
	}
}

// cronLogger adapts slog to the cron logger interface used by the recovery chain.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, slog.Any("details", keysAndValues))
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, slog.String("error", err.Error()), slog.Any("details", keysAndValues))
}
