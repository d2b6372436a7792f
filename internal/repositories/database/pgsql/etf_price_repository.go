package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
	"github.com/vorsorgeapp/pension_backend/internal/utils/mapping"
)

// PgxETFPriceRepository implements the ETF price repository ports using pgxpool.
type PgxETFPriceRepository struct {
	BaseRepository
}

// newPgxETFPriceRepository creates a new PgxETFPriceRepository.
func newPgxETFPriceRepository(db *pgxpool.Pool) *PgxETFPriceRepository {
	return &PgxETFPriceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const etfPriceColumns = `etf_id, price_date, price, original_price, original_currency,
	used_fallback, created_at, updated_at`

func scanETFPrice(row pgx.Row) (models.ETFPrice, error) {
	var m models.ETFPrice
	err := row.Scan(
		&m.ETFID, &m.PriceDate, &m.Price, &m.OriginalPrice, &m.OriginalCurrency,
		&m.UsedFallback, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// UpsertETFPrice inserts the price, or updates it by the (etf_id, price_date) key.
func (r *PgxETFPriceRepository) UpsertETFPrice(ctx context.Context, price domain.ETFPrice) error {
	m := mapping.ToModelETFPrice(price)
	query := `
		INSERT INTO etf_prices (etf_id, price_date, price, original_price, original_currency, used_fallback, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (etf_id, price_date)
		DO UPDATE SET price = EXCLUDED.price, original_price = EXCLUDED.original_price,
			original_currency = EXCLUDED.original_currency, used_fallback = EXCLUDED.used_fallback,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ETFID, busday.DateOnly(m.PriceDate), m.Price, m.OriginalPrice, m.OriginalCurrency,
		m.UsedFallback, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert ETF price", err)
	}
	return nil
}

// FindETFPrice retrieves the price for an ETF on an exact date.
func (r *PgxETFPriceRepository) FindETFPrice(ctx context.Context, etfID string, date time.Time) (*domain.ETFPrice, error) {
	query := `
		SELECT ` + etfPriceColumns + `
		FROM etf_prices
		WHERE etf_id = $1 AND price_date = $2;
	`

	m, err := scanETFPrice(r.Pool.QueryRow(ctx, query, etfID, busday.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no price for ETF " + etfID + " on " + date.Format(time.DateOnly))
		}
		return nil, apperrors.NewAppError(500, "failed to find ETF price", err)
	}

	d := mapping.ToDomainETFPrice(m)
	return &d, nil
}

// ListETFPrices retrieves prices for an ETF within [from, to], ascending by date.
func (r *PgxETFPriceRepository) ListETFPrices(ctx context.Context, etfID string, from, to time.Time) ([]domain.ETFPrice, error) {
	query := `
		SELECT ` + etfPriceColumns + `
		FROM etf_prices
		WHERE etf_id = $1 AND price_date >= $2 AND price_date <= $3
		ORDER BY price_date ASC;
	`

	rows, err := r.Pool.Query(ctx, query, etfID, busday.DateOnly(from), busday.DateOnly(to))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list ETF prices", err)
	}
	defer rows.Close()

	var prices []domain.ETFPrice
	for rows.Next() {
		m, err := scanETFPrice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ETF price", err)
		}
		prices = append(prices, mapping.ToDomainETFPrice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ETF prices", err)
	}
	return prices, nil
}

// LatestETFPriceDate returns the most recent date with a stored price for the ETF.
func (r *PgxETFPriceRepository) LatestETFPriceDate(ctx context.Context, etfID string) (time.Time, error) {
	query := `
		SELECT price_date
		FROM etf_prices
		WHERE etf_id = $1
		ORDER BY price_date DESC
		LIMIT 1;
	`

	var latest time.Time
	err := r.Pool.QueryRow(ctx, query, etfID).Scan(&latest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperrors.NewNotFoundError("no prices stored for ETF " + etfID)
		}
		return time.Time{}, apperrors.NewAppError(500, "failed to get latest ETF price date", err)
	}
	return latest, nil
}
