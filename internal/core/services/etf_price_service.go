package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portsrepo "github.com/vorsorgeapp/pension_backend/internal/core/ports/repositories"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

// ETFPriceService ingests vendor price observations: each is converted into
// the base currency and stored with its original quote kept alongside, so a
// substituted or fallen-back conversion stays auditable.
type ETFPriceService struct {
	priceRepo    portsrepo.ETFPriceRepositoryFacade
	converter    portssvc.ConverterSvc
	tracking     portssvc.TrackingSvcFacade
	baseCurrency string
	logger       *slog.Logger
	now          func() time.Time
}

// NewETFPriceService creates a new ETFPriceService.
func NewETFPriceService(
	priceRepo portsrepo.ETFPriceRepositoryFacade,
	converter portssvc.ConverterSvc,
	tracking portssvc.TrackingSvcFacade,
	baseCurrency string,
	logger *slog.Logger,
) *ETFPriceService {
	return &ETFPriceService{
		priceRepo:    priceRepo,
		converter:    converter,
		tracking:     tracking,
		baseCurrency: strings.ToUpper(baseCurrency),
		logger:       logger,
		now:          time.Now,
	}
}

// IngestPrices converts and persists a batch of observations. One bad item
// does not abort the batch; only a persistence fault does.
func (s *ETFPriceService) IngestPrices(ctx context.Context, observations []domain.ETFPriceObservation) ([]portssvc.ETFPriceIngestResult, error) {
	results := make([]portssvc.ETFPriceIngestResult, 0, len(observations))
	touchedETFs := make(map[string]bool)

	for _, obs := range observations {
		if obs.ETFID == "" {
			return results, fmt.Errorf("%w: observation without ETF ID", apperrors.ErrValidation)
		}

		converted, usedFallback, err := s.converter.Convert(ctx, obs.Price, obs.Currency, s.baseCurrency, obs.Date)
		if err != nil {
			return results, fmt.Errorf("failed to convert price for ETF %s: %w", obs.ETFID, err)
		}
		if usedFallback {
			s.logger.Warn("Storing ETF price unconverted, no rate available",
				slog.String("etf_id", obs.ETFID),
				slog.String("currency", obs.Currency),
				slog.Time("date", obs.Date),
			)
		}

		now := s.now()
		price := domain.ETFPrice{
			ETFID:            obs.ETFID,
			PriceDate:        busday.DateOnly(obs.Date),
			Price:            converted,
			OriginalPrice:    obs.Price,
			OriginalCurrency: obs.Currency,
			UsedFallback:     usedFallback,
			Timestamps: domain.Timestamps{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if err := s.priceRepo.UpsertETFPrice(ctx, price); err != nil {
			return results, fmt.Errorf("failed to store price for ETF %s: %w", obs.ETFID, err)
		}

		touchedETFs[obs.ETFID] = true
		results = append(results, portssvc.ETFPriceIngestResult{
			ETFID:        obs.ETFID,
			Date:         price.PriceDate,
			UsedFallback: usedFallback,
		})
	}

	// Mark the per-ETF ledger so the catch-up pass skips these today.
	today := busday.DateOnly(s.now())
	for etfID := range touchedETFs {
		category := domain.ETFPriceTrackingCategory(etfID)
		if _, err := s.tracking.MarkAttempted(ctx, today, category, true, ""); err != nil {
			s.logger.Warn("Failed to mark tracking for ETF ingestion",
				slog.String("etf_id", etfID),
				slog.String("error", err.Error()),
			)
		}
	}

	return results, nil
}

// GetPrice retrieves the stored price for an ETF on an exact date.
func (s *ETFPriceService) GetPrice(ctx context.Context, etfID string, date time.Time) (*domain.ETFPrice, error) {
	return s.priceRepo.FindETFPrice(ctx, etfID, date)
}

// ListPrices retrieves stored prices for an ETF within [from, to].
func (s *ETFPriceService) ListPrices(ctx context.Context, etfID string, from, to time.Time) ([]domain.ETFPrice, error) {
	return s.priceRepo.ListETFPrices(ctx, etfID, from, to)
}
