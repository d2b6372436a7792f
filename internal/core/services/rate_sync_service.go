package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portsclients "github.com/vorsorgeapp/pension_backend/internal/core/ports/clients"
	portsrepo "github.com/vorsorgeapp/pension_backend/internal/core/ports/repositories"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

// RateSyncConfig tunes the synchronization engine.
type RateSyncConfig struct {
	// Currencies is the supported list in importance order, e.g. USD first.
	Currencies []string
	// ChunkDays bounds each fetch window so the external source's response
	// size and timeout limits are respected.
	ChunkDays int
	// MaxRetries is the total number of fetch attempts per chunk.
	MaxRetries int
	// RetryBackoff is the initial backoff interval; it doubles per retry.
	RetryBackoff time.Duration
}

// RateSyncService is the chunked synchronization engine: it decides per
// currency what date range is missing, walks that range in bounded chunks,
// drives the fetcher with retry and backoff, merges results into the rate
// store, and finalizes one SyncUpdate record per run.
//
// Per-chunk fetch failures never fail the run; they land in MissingDates.
// Only a broken persistence layer or a cancelled context marks a run failed.
type RateSyncService struct {
	rateStore portssvc.RateStoreSvcFacade
	syncRepo  portsrepo.SyncUpdateRepositoryFacade
	fetcher   portsclients.RateFetcher
	cfg       RateSyncConfig
	logger    *slog.Logger
	now       func() time.Time
}

// NewRateSyncService creates a new RateSyncService.
func NewRateSyncService(
	rateStore portssvc.RateStoreSvcFacade,
	syncRepo portsrepo.SyncUpdateRepositoryFacade,
	fetcher portsclients.RateFetcher,
	cfg RateSyncConfig,
	logger *slog.Logger,
) *RateSyncService {
	if cfg.ChunkDays <= 0 {
		cfg.ChunkDays = 30
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}
	return &RateSyncService{
		rateStore: rateStore,
		syncRepo:  syncRepo,
		fetcher:   fetcher,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// currencyRange is one currency's resolved fetch window.
type currencyRange struct {
	currency string
	start    time.Time
	end      time.Time
}

// Synchronize runs one synchronization pass per the request's update type.
func (s *RateSyncService) Synchronize(ctx context.Context, req portssvc.SyncRequest) (*domain.SyncUpdate, error) {
	if !req.UpdateType.Valid() {
		return nil, fmt.Errorf("%w: unknown update type %q", apperrors.ErrValidation, req.UpdateType)
	}

	currencies := req.Currencies
	if len(currencies) == 0 {
		currencies = s.cfg.Currencies
	}

	today := busday.DateOnly(s.now())
	yesterday := today.AddDate(0, 0, -1)

	var ranges []currencyRange
	for _, currency := range currencies {
		currency = strings.ToUpper(currency)
		r, needed, err := s.resolveRange(ctx, currency, req, today)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve fetch range for %s: %w", currency, err)
		}
		if !needed {
			s.logger.Debug("Currency already current, skipping", slog.String("currency", currency))
			continue
		}
		ranges = append(ranges, r)
	}

	// Nothing to do: report a synthetic completed run spanning yesterday.
	// It is a no-op marker and is deliberately not persisted.
	if len(ranges) == 0 {
		now := s.now()
		return &domain.SyncUpdate{
			UpdateID:    uuid.NewString(),
			UpdateType:  req.UpdateType,
			StartDate:   yesterday,
			EndDate:     yesterday,
			Currencies:  []string{},
			Status:      domain.SyncStatusCompleted,
			TriggeredBy: req.TriggeredBy,
			CreatedAt:   now,
			CompletedAt: &now,
		}, nil
	}

	update := domain.SyncUpdate{
		UpdateID:    uuid.NewString(),
		UpdateType:  req.UpdateType,
		StartDate:   ranges[0].start,
		EndDate:     ranges[0].end,
		Status:      domain.SyncStatusProcessing,
		TriggeredBy: req.TriggeredBy,
		CreatedAt:   s.now(),
	}
	for _, r := range ranges {
		update.Currencies = append(update.Currencies, r.currency)
		if r.start.Before(update.StartDate) {
			update.StartDate = r.start
		}
		if r.end.After(update.EndDate) {
			update.EndDate = r.end
		}
	}

	// Persist immediately so partial progress is observable mid-run.
	if err := s.syncRepo.CreateSyncUpdate(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to create sync update record: %w", err)
	}

	logger := s.logger.With(slog.String("update_id", update.UpdateID), slog.String("update_type", string(update.UpdateType)))
	logger.Info("Starting rate synchronization",
		slog.Time("start_date", update.StartDate),
		slog.Time("end_date", update.EndDate),
		slog.Any("currencies", update.Currencies),
	)

	var missingDates []time.Time
	var retryCount int
	for _, r := range ranges {
		missing, retries, err := s.syncCurrency(ctx, logger, r)
		missingDates = append(missingDates, missing...)
		retryCount += retries
		if err != nil {
			// The process itself broke (store unreachable, run cancelled).
			logger.Error("Rate synchronization failed", slog.String("currency", r.currency), slog.String("error", err.Error()))
			if markErr := s.syncRepo.MarkSyncUpdateFailed(ctx, update.UpdateID, err.Error()); markErr != nil {
				logger.Error("Failed to mark sync update failed", slog.String("error", markErr.Error()))
			}
			update.Status = domain.SyncStatusFailed
			update.Error = err.Error()
			return &update, err
		}
	}

	if err := s.syncRepo.MarkSyncUpdateCompleted(ctx, update.UpdateID, missingDates, retryCount); err != nil {
		return &update, fmt.Errorf("failed to finalize sync update: %w", err)
	}

	now := s.now()
	update.Status = domain.SyncStatusCompleted
	update.MissingDates = missingDates
	update.RetryCount = retryCount
	update.CompletedAt = &now
	logger.Info("Rate synchronization completed",
		slog.Int("missing_dates", len(missingDates)),
		slog.Int("retries", retryCount),
	)
	return &update, nil
}

// resolveRange decides whether a currency needs fetching and, if so, its
// minimal [start, end] window.
func (s *RateSyncService) resolveRange(ctx context.Context, currency string, req portssvc.SyncRequest, today time.Time) (currencyRange, bool, error) {
	yesterday := today.AddDate(0, 0, -1)

	end := today
	if req.EndDate != nil && busday.DateOnly(*req.EndDate).Before(today) {
		end = busday.DateOnly(*req.EndDate)
	}

	latest, err := s.rateStore.LatestRateDate(ctx, currency)
	hasData := err == nil
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return currencyRange{}, false, err
	}

	var start time.Time
	switch req.UpdateType {
	case domain.UpdateTypeScheduledDaily, domain.UpdateTypeStartupCatchup:
		if !hasData {
			start = yesterday
			break
		}
		// Current when the watermark reached the last business day.
		if !busday.DateOnly(latest).Before(busday.PrevBusinessDay(today)) {
			return currencyRange{}, false, nil
		}
		start = busday.DateOnly(latest).AddDate(0, 0, 1)

	case domain.UpdateTypeManualLatest:
		// Operator force refresh: re-check even when the watermark is current.
		start = yesterday
		if hasData && busday.DateOnly(latest).Before(yesterday) {
			start = busday.DateOnly(latest).AddDate(0, 0, 1)
		}

	case domain.UpdateTypeManualHistorical, domain.UpdateTypeScheduledHistorical:
		if req.StartDate != nil {
			start = busday.DateOnly(*req.StartDate)
		} else {
			start = yesterday
		}
		// Never re-fetch below the watermark unless the caller explicitly
		// asked to start there too; gaps above it are what we fill.
		if hasData && busday.DateOnly(latest).AddDate(0, 0, 1).After(start) {
			start = busday.DateOnly(latest).AddDate(0, 0, 1)
		}
	}

	if start.After(end) {
		return currencyRange{}, false, nil
	}
	return currencyRange{currency: currency, start: start, end: end}, true, nil
}

// syncCurrency walks one currency's window in ascending chunks. It returns
// the business days that stayed unfetchable and the retries spent. A non-nil
// error means the run must abort.
func (s *RateSyncService) syncCurrency(ctx context.Context, logger *slog.Logger, r currencyRange) ([]time.Time, int, error) {
	logger = logger.With(slog.String("currency", r.currency))

	var missingDates []time.Time
	var retryCount int
	for chunkStart := r.start; !chunkStart.After(r.end); chunkStart = chunkStart.AddDate(0, 0, s.cfg.ChunkDays) {
		// Cooperative cancellation between chunks only, never mid-fetch,
		// so a chunk is never left half-merged.
		if err := ctx.Err(); err != nil {
			return missingDates, retryCount, fmt.Errorf("synchronization cancelled: %w", err)
		}

		chunkEnd := chunkStart.AddDate(0, 0, s.cfg.ChunkDays-1)
		if chunkEnd.After(r.end) {
			chunkEnd = r.end
		}

		// A chunk that starts on a weekend begins at the next business day;
		// a weekend-only chunk has nothing to fetch.
		effStart := busday.NextBusinessDay(chunkStart)
		if effStart.After(chunkEnd) {
			continue
		}

		observations, retries, err := s.fetchChunk(ctx, r.currency, effStart, chunkEnd)
		retryCount += retries
		if err != nil {
			// Retries exhausted: the whole chunk's business days count as
			// missing, partial credit is never given.
			logger.Warn("Chunk failed after retries, recording business days as missing",
				slog.Time("chunk_start", effStart),
				slog.Time("chunk_end", chunkEnd),
				slog.String("error", err.Error()),
			)
			missingDates = append(missingDates, busday.BusinessDaysBetween(effStart, chunkEnd)...)
			continue
		}

		if len(observations) == 0 {
			continue
		}

		rates := make([]domain.ExchangeRate, len(observations))
		now := s.now()
		for i, obs := range observations {
			rates[i] = domain.ExchangeRate{
				RateDate: busday.DateOnly(obs.Date),
				Currency: r.currency,
				Rate:     obs.Rate,
				Timestamps: domain.Timestamps{
					CreatedAt: now,
					UpdatedAt: now,
				},
			}
		}
		// Each chunk commits on its own, so progress survives later failures.
		if err := s.rateStore.UpsertRates(ctx, rates); err != nil {
			return missingDates, retryCount, fmt.Errorf("failed to merge chunk for %s: %w", r.currency, err)
		}
		logger.Debug("Chunk merged",
			slog.Time("chunk_start", effStart),
			slog.Time("chunk_end", chunkEnd),
			slog.Int("observations", len(observations)),
		)
	}
	return missingDates, retryCount, nil
}

// fetchChunk drives the fetcher for one chunk with exponential backoff. An
// empty result is an error here: the chunk window always contains business
// days and the source is expected to have data on them. retries counts the
// attempts beyond the first.
func (s *RateSyncService) fetchChunk(ctx context.Context, currency string, start, end time.Time) ([]domain.RateObservation, int, error) {
	var observations []domain.RateObservation
	var attempts int

	operation := func() error {
		attempts++
		obs, err := s.fetcher.FetchRates(ctx, currency, start, end)
		if err != nil {
			return err
		}
		if len(obs) == 0 {
			return fmt.Errorf("empty result for %s on business-day range %s..%s",
				currency, start.Format(time.DateOnly), end.Format(time.DateOnly))
		}
		observations = obs
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.RetryBackoff
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(s.cfg.MaxRetries-1)), ctx))
	if err != nil {
		return nil, attempts - 1, err
	}
	return observations, attempts - 1, nil
}

// GetSyncUpdate retrieves a single run record.
func (s *RateSyncService) GetSyncUpdate(ctx context.Context, updateID string) (*domain.SyncUpdate, error) {
	return s.syncRepo.FindSyncUpdateByID(ctx, updateID)
}

// ListRecentSyncUpdates retrieves the most recent run records, newest first.
func (s *RateSyncService) ListRecentSyncUpdates(ctx context.Context, limit int) ([]domain.SyncUpdate, error) {
	return s.syncRepo.ListRecentSyncUpdates(ctx, limit)
}

// CleanupSyncUpdates deletes completed run records older than the retention window.
func (s *RateSyncService) CleanupSyncUpdates(ctx context.Context, retainDays int) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -retainDays)
	return s.syncRepo.DeleteCompletedSyncUpdatesBefore(ctx, cutoff)
}
