package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portsrepo "github.com/vorsorgeapp/pension_backend/internal/core/ports/repositories"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

const (
	rateCacheTTL     = time.Hour
	rateCacheCleanup = 2 * time.Hour
)

// RateStoreService serves rate lookups over the exchange rate repository with
// a read-through cache on exact-date hits. Every upsert invalidates the cache
// entries it touches, so readers never see a stale value after a re-fetch.
type RateStoreService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	cache    *gocache.Cache
}

// NewRateStoreService creates a new RateStoreService.
func NewRateStoreService(rateRepo portsrepo.ExchangeRateRepositoryFacade) *RateStoreService {
	return &RateStoreService{
		rateRepo: rateRepo,
		cache:    gocache.New(rateCacheTTL, rateCacheCleanup),
	}
}

func rateCacheKey(currency string, date time.Time) string {
	return fmt.Sprintf("%s-%s", currency, busday.DateOnly(date).Format(time.DateOnly))
}

// GetRate retrieves the rate for a currency on an exact date.
func (s *RateStoreService) GetRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error) {
	key := rateCacheKey(currency, date)
	if cached, found := s.cache.Get(key); found {
		rate := cached.(domain.ExchangeRate)
		return &rate, nil
	}

	rate, err := s.rateRepo.FindRate(ctx, currency, date)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, *rate, gocache.DefaultExpiration)
	return rate, nil
}

// GetClosestRate retrieves the rate for the exact date, falling back to the
// adjacent days; the later neighbour wins when both exist. Fallback results
// are not cached under the requested date, since a later sync may fill the
// exact day.
func (s *RateStoreService) GetClosestRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error) {
	key := rateCacheKey(currency, date)
	if cached, found := s.cache.Get(key); found {
		rate := cached.(domain.ExchangeRate)
		return &rate, nil
	}

	rate, err := s.rateRepo.FindClosestRate(ctx, currency, date)
	if err != nil {
		return nil, err
	}
	if busday.DateOnly(rate.RateDate).Equal(busday.DateOnly(date)) {
		s.cache.Set(key, *rate, gocache.DefaultExpiration)
	}
	return rate, nil
}

// LatestRateDate returns the watermark for the currency.
func (s *RateStoreService) LatestRateDate(ctx context.Context, currency string) (time.Time, error) {
	return s.rateRepo.LatestRateDate(ctx, currency)
}

// ListRates retrieves all rates for a currency within [from, to].
func (s *RateStoreService) ListRates(ctx context.Context, currency string, from, to time.Time) ([]domain.ExchangeRate, error) {
	return s.rateRepo.ListRates(ctx, currency, from, to)
}

// UpsertRates merges a batch of rates into the store and invalidates the
// cache entries for the touched keys.
func (s *RateStoreService) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if err := s.rateRepo.UpsertRates(ctx, rates); err != nil {
		return fmt.Errorf("failed to upsert rates: %w", err)
	}
	for _, rate := range rates {
		s.cache.Delete(rateCacheKey(rate.Currency, rate.RateDate))
	}
	return nil
}
