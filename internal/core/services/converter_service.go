package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	portssvc "github.com/vorsorgeapp/pension_backend/internal/core/ports/services"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

// minorUnitCurrencies maps codes quoted in 1/100 of their proper unit to that
// unit. Vendors quote London listings in pence (GBp/GBX) and similar for a
// few other markets; amounts in these codes are divided by 100 before lookup.
var minorUnitCurrencies = map[string]string{
	"GBp": "GBP",
	"GBX": "GBP",
	"ZAc": "ZAR",
	"ILA": "ILS",
	"USX": "USD",
}

const errorLedgerWriteTimeout = 5 * time.Second

// ConverterService converts amounts between currencies using stored rates.
// A missing rate never fails the caller: the amount comes back unconverted
// with usedFallback=true and the miss lands in the conversion error ledger.
type ConverterService struct {
	rateStore    portssvc.RateStoreReaderSvc
	errorLedger  portssvc.ConversionErrorSvcFacade
	baseCurrency string
	logger       *slog.Logger
}

// NewConverterService creates a new ConverterService.
func NewConverterService(
	rateStore portssvc.RateStoreReaderSvc,
	errorLedger portssvc.ConversionErrorSvcFacade,
	baseCurrency string,
	logger *slog.Logger,
) *ConverterService {
	return &ConverterService{
		rateStore:    rateStore,
		errorLedger:  errorLedger,
		baseCurrency: strings.ToUpper(baseCurrency),
		logger:       logger,
	}
}

// Convert converts amount from one currency to another on the given date.
//
// Stored rates mean "1 base unit = rate units of currency": converting from
// the base multiplies, converting to the base divides, and a cross conversion
// goes through the base. A ±1 day substitute rate is used silently apart from
// a provenance note in the error ledger; only a full miss falls back to the
// unconverted amount.
func (s *ConverterService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, bool, error) {
	if proper, ok := minorUnitCurrencies[fromCurrency]; ok {
		amount = amount.Div(decimal.NewFromInt(100))
		fromCurrency = proper
	}
	if proper, ok := minorUnitCurrencies[toCurrency]; ok {
		toCurrency = proper
	}
	fromCurrency = strings.ToUpper(fromCurrency)
	toCurrency = strings.ToUpper(toCurrency)

	if fromCurrency == toCurrency {
		return amount, false, nil
	}

	converted := amount

	// Into the base first, unless the amount is already in it.
	if fromCurrency != s.baseCurrency {
		rate, ok, err := s.lookupRate(ctx, fromCurrency, toCurrency, date)
		if err != nil {
			return amount, false, err
		}
		if !ok {
			return amount, true, nil
		}
		converted = converted.Div(rate)
	}

	// Then out of the base, unless the target is the base.
	if toCurrency != s.baseCurrency {
		rate, ok, err := s.lookupRate(ctx, toCurrency, fromCurrency, date)
		if err != nil {
			return amount, false, err
		}
		if !ok {
			return amount, true, nil
		}
		converted = converted.Mul(rate)
	}

	return converted, false, nil
}

// lookupRate resolves one currency's rate with the closest-date fallback.
// ok=false means no rate existed within the window; the miss has been
// recorded. err reports infrastructure faults only.
func (s *ConverterService) lookupRate(ctx context.Context, currency, counterCurrency string, date time.Time) (decimal.Decimal, bool, error) {
	rate, err := s.rateStore.GetClosestRate(ctx, currency, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.recordError(ctx, currency, counterCurrency, date,
				fmt.Sprintf("no rate for %s within a day of %s", currency, date.Format(time.DateOnly)))
			return decimal.Decimal{}, false, nil
		}
		return decimal.Decimal{}, false, fmt.Errorf("failed to look up rate for %s: %w", currency, err)
	}

	if !busday.DateOnly(rate.RateDate).Equal(busday.DateOnly(date)) {
		// Substitute-date use is not a failure, but its provenance is kept.
		s.recordError(ctx, currency, counterCurrency, date,
			fmt.Sprintf("substituted rate of %s for requested date %s",
				rate.RateDate.Format(time.DateOnly), date.Format(time.DateOnly)))
	}
	return rate.Rate, true, nil
}

// recordError writes to the error ledger best-effort, on a context detached
// from the caller's: a failure to log must never fail the conversion or roll
// back the caller's transaction.
func (s *ConverterService) recordError(ctx context.Context, source, target string, date time.Time, errContext string) {
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), errorLedgerWriteTimeout)
	defer cancel()

	if err := s.errorLedger.RecordConversionError(detached, source, target, date, errContext); err != nil {
		s.logger.Warn("Failed to record conversion error",
			slog.String("source", source),
			slog.String("target", target),
			slog.Time("date", date),
			slog.String("error", err.Error()),
		)
	}
}

var _ portssvc.ConverterSvc = (*ConverterService)(nil)
