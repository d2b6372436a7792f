package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vorsorgeapp/pension_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo:    newPgxExchangeRateRepository(dbPool),
		SyncUpdateRepo:      newPgxSyncUpdateRepository(dbPool),
		DailyTrackingRepo:   newPgxDailyTrackingRepository(dbPool),
		ConversionErrorRepo: newPgxConversionErrorRepository(dbPool),
		ETFPriceRepo:        newPgxETFPriceRepository(dbPool),
	}
}
