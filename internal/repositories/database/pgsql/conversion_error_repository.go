package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vorsorgeapp/pension_backend/internal/apperrors"
	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	"github.com/vorsorgeapp/pension_backend/internal/models"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
	"github.com/vorsorgeapp/pension_backend/internal/utils/mapping"
)

// PgxConversionErrorRepository implements the conversion error repository ports using pgxpool.
type PgxConversionErrorRepository struct {
	BaseRepository
}

// newPgxConversionErrorRepository creates a new PgxConversionErrorRepository.
func newPgxConversionErrorRepository(db *pgxpool.Pool) *PgxConversionErrorRepository {
	return &PgxConversionErrorRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const conversionErrorColumns = `error_id, source_currency, target_currency, rate_date,
	context, resolved, resolved_at, created_at`

func scanConversionError(row pgx.Row) (models.ConversionError, error) {
	var m models.ConversionError
	err := row.Scan(
		&m.ErrorID, &m.SourceCurrency, &m.TargetCurrency, &m.RateDate,
		&m.Context, &m.Resolved, &m.ResolvedAt, &m.CreatedAt,
	)
	return m, err
}

// RecordConversionError upserts by the (source, target, date) key. A repeated
// miss refreshes the context of the existing row and reopens it when it had
// been resolved, instead of inserting a duplicate.
func (r *PgxConversionErrorRepository) RecordConversionError(ctx context.Context, source, target string, date time.Time, errContext string) error {
	query := `
		INSERT INTO exchange_rate_errors (error_id, source_currency, target_currency, rate_date, context, resolved, resolved_at, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NULL, $6)
		ON CONFLICT (source_currency, target_currency, rate_date)
		DO UPDATE SET context = EXCLUDED.context, resolved = FALSE, resolved_at = NULL;
	`

	var contextArg *string
	if errContext != "" {
		contextArg = &errContext
	}
	_, err := r.Pool.Exec(ctx, query,
		uuid.NewString(), strings.ToUpper(source), strings.ToUpper(target),
		busday.DateOnly(date), contextArg, time.Now(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record conversion error", err)
	}
	return nil
}

// ResolveConversionError marks the record resolved with the current time.
func (r *PgxConversionErrorRepository) ResolveConversionError(ctx context.Context, errorID string) error {
	query := `
		UPDATE exchange_rate_errors
		SET resolved = TRUE, resolved_at = $2
		WHERE error_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query, errorID, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to resolve conversion error", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("conversion error " + errorID + " not found")
	}
	return nil
}

// FindConversionErrorByID retrieves one conversion error record.
func (r *PgxConversionErrorRepository) FindConversionErrorByID(ctx context.Context, errorID string) (*domain.ConversionError, error) {
	query := `
		SELECT ` + conversionErrorColumns + `
		FROM exchange_rate_errors
		WHERE error_id = $1;
	`

	m, err := scanConversionError(r.Pool.QueryRow(ctx, query, errorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("conversion error with ID " + errorID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get conversion error by ID", err)
	}

	d := mapping.ToDomainConversionError(m)
	return &d, nil
}

// ListUnresolvedConversionErrors retrieves unresolved records, oldest first.
func (r *PgxConversionErrorRepository) ListUnresolvedConversionErrors(ctx context.Context, limit int) ([]domain.ConversionError, error) {
	query := `
		SELECT ` + conversionErrorColumns + `
		FROM exchange_rate_errors
		WHERE resolved = FALSE
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list conversion errors", err)
	}
	defer rows.Close()

	var errs []domain.ConversionError
	for rows.Next() {
		m, err := scanConversionError(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan conversion error", err)
		}
		errs = append(errs, mapping.ToDomainConversionError(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating conversion errors", err)
	}
	return errs, nil
}
