package services

import (
	"log/slog"

	portsclients "github.com/vorsorgeapp/pension_backend/internal/core/ports/clients"
	portsrepo "github.com/vorsorgeapp/pension_backend/internal/core/ports/repositories"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	fetcher portsclients.RateFetcher,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate store comes first since both the sync engine and the
	// converter read through it.
	container.RateStore = NewRateStoreService(repos.ExchangeRateRepo)
	container.Tracking = NewTrackingService(repos.DailyTrackingRepo)
	container.ConversionError = NewConversionErrorService(repos.ConversionErrorRepo)

	container.Converter = NewConverterService(
		container.RateStore,
		container.ConversionError,
		cfg.BaseCurrency,
		logger,
	)

	container.RateSync = NewRateSyncService(
		container.RateStore,
		repos.SyncUpdateRepo,
		fetcher,
		RateSyncConfig{
			Currencies:   cfg.SyncCurrencies,
			ChunkDays:    cfg.SyncChunkDays,
			MaxRetries:   cfg.SyncMaxRetries,
			RetryBackoff: cfg.SyncBackoff,
		},
		logger,
	)

	container.ETFPrice = NewETFPriceService(
		repos.ETFPriceRepo,
		container.Converter,
		container.Tracking,
		cfg.BaseCurrency,
		logger,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateStoreSvcFacade       = (*RateStoreService)(nil)
	_ portssvc.RateSyncSvcFacade        = (*RateSyncService)(nil)
	_ portssvc.TrackingSvcFacade        = (*TrackingService)(nil)
	_ portssvc.ConversionErrorSvcFacade = (*ConversionErrorService)(nil)
	_ portssvc.ETFPriceSvcFacade        = (*ETFPriceService)(nil)
)
