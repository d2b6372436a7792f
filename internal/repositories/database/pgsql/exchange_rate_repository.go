package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
	"github.com/vorsorgeapp/pension_backend/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange rate repository ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const exchangeRateColumns = `rate_date, currency, rate, created_at, updated_at`

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(&m.RateDate, &m.Currency, &m.Rate, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// FindRate retrieves the rate for a currency on an exact date.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency = $1 AND rate_date = $2;
	`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, strings.ToUpper(currency), busday.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate not found for " + currency + " on " + date.Format(time.DateOnly))
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(m)
	return &domainRate, nil
}

// FindClosestRate retrieves the rate for the exact date, falling back to the
// adjacent days. The exact date wins outright; between the two neighbours the
// later one wins.
func (r *PgxExchangeRateRepository) FindClosestRate(ctx context.Context, currency string, date time.Time) (*domain.ExchangeRate, error) {
	day := busday.DateOnly(date)
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency = $1 AND rate_date IN ($2, $3, $4)
		ORDER BY (rate_date = $2) DESC, rate_date DESC
		LIMIT 1;
	`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query,
		strings.ToUpper(currency), day, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rate within a day of " + date.Format(time.DateOnly) + " for " + currency)
		}
		return nil, apperrors.NewAppError(500, "failed to find closest exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(m)
	return &domainRate, nil
}

// LatestRateDate returns the most recent date with a stored rate for the currency.
func (r *PgxExchangeRateRepository) LatestRateDate(ctx context.Context, currency string) (time.Time, error) {
	query := `
		SELECT rate_date
		FROM exchange_rates
		WHERE currency = $1
		ORDER BY rate_date DESC
		LIMIT 1;
	`

	var latest time.Time
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(currency)).Scan(&latest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperrors.NewNotFoundError("no rates stored for currency " + currency)
		}
		return time.Time{}, apperrors.NewAppError(500, "failed to get latest rate date", err)
	}
	return latest, nil
}

// ListRates retrieves all rates for a currency within [from, to], ascending by date.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, currency string, from, to time.Time) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency = $1 AND rate_date >= $2 AND rate_date <= $3
		ORDER BY rate_date ASC;
	`

	rows, err := r.Pool.Query(ctx, query, strings.ToUpper(currency), busday.DateOnly(from), busday.DateOnly(to))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}
	return rates, nil
}

// UpsertRate inserts the rate, or updates the stored value when it differs.
func (r *PgxExchangeRateRepository) UpsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := r.Pool.Exec(ctx, upsertRateSQL,
		busday.DateOnly(m.RateDate), strings.ToUpper(m.Currency), m.Rate, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert exchange rate", err)
	}
	return nil
}

const upsertRateSQL = `
	INSERT INTO exchange_rates (rate_date, currency, rate, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (rate_date, currency)
	DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at
	WHERE exchange_rates.rate IS DISTINCT FROM EXCLUDED.rate;
`

// UpsertRates upserts a batch of rates within a single transaction, so one
// chunk's merge commits atomically.
func (r *PgxExchangeRateRepository) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		_, err = tx.Exec(ctx, upsertRateSQL,
			busday.DateOnly(m.RateDate), strings.ToUpper(m.Currency), m.Rate, m.CreatedAt, m.UpdatedAt)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to upsert exchange rate batch", err)
		}
	}

	return r.Commit(ctx, tx)
}
