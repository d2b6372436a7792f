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

// PgxDailyTrackingRepository implements the daily tracking repository ports using pgxpool.
type PgxDailyTrackingRepository struct {
	BaseRepository
}

// newPgxDailyTrackingRepository creates a new PgxDailyTrackingRepository.
func newPgxDailyTrackingRepository(db *pgxpool.Pool) *PgxDailyTrackingRepository {
	return &PgxDailyTrackingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const trackingColumns = `tracking_date, category, attempted, data_found, notes, created_at, updated_at`

func scanTracking(row pgx.Row) (models.DailyUpdateTracking, error) {
	var m models.DailyUpdateTracking
	err := row.Scan(&m.TrackingDate, &m.Category, &m.Attempted, &m.DataFound, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// FindTracking retrieves the tracking row for a (date, category) key.
func (r *PgxDailyTrackingRepository) FindTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM daily_update_tracking
		WHERE tracking_date = $1 AND category = $2;
	`

	m, err := scanTracking(r.Pool.QueryRow(ctx, query, busday.DateOnly(date), category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no tracking row for " + category + " on " + date.Format(time.DateOnly))
		}
		return nil, apperrors.NewAppError(500, "failed to find tracking row", err)
	}

	d := mapping.ToDomainDailyUpdateTracking(m)
	return &d, nil
}

// GetOrCreateTracking returns the row for the key, creating it with
// attempted=false when absent. The DO UPDATE on conflict is a no-op touch so
// RETURNING always yields the surviving row, whoever inserted it.
func (r *PgxDailyTrackingRepository) GetOrCreateTracking(ctx context.Context, date time.Time, category string) (*domain.DailyUpdateTracking, error) {
	now := time.Now()
	query := `
		INSERT INTO daily_update_tracking (tracking_date, category, attempted, data_found, notes, created_at, updated_at)
		VALUES ($1, $2, FALSE, FALSE, NULL, $3, $3)
		ON CONFLICT (tracking_date, category)
		DO UPDATE SET category = EXCLUDED.category
		RETURNING ` + trackingColumns + `;
	`

	m, err := scanTracking(r.Pool.QueryRow(ctx, query, busday.DateOnly(date), category, now))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to get or create tracking row", err)
	}

	d := mapping.ToDomainDailyUpdateTracking(m)
	return &d, nil
}

// MarkTrackingAttempted upserts the row with attempted=true and the given outcome.
func (r *PgxDailyTrackingRepository) MarkTrackingAttempted(ctx context.Context, date time.Time, category string, dataFound bool, notes string) (*domain.DailyUpdateTracking, error) {
	now := time.Now()
	query := `
		INSERT INTO daily_update_tracking (tracking_date, category, attempted, data_found, notes, created_at, updated_at)
		VALUES ($1, $2, TRUE, $3, $4, $5, $5)
		ON CONFLICT (tracking_date, category)
		DO UPDATE SET attempted = TRUE, data_found = EXCLUDED.data_found, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at
		RETURNING ` + trackingColumns + `;
	`

	var notesArg *string
	if notes != "" {
		notesArg = &notes
	}
	m, err := scanTracking(r.Pool.QueryRow(ctx, query, busday.DateOnly(date), category, dataFound, notesArg, now))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark tracking attempted", err)
	}

	d := mapping.ToDomainDailyUpdateTracking(m)
	return &d, nil
}

// DeleteTrackingBefore removes rows with a tracking date older than the cutoff.
func (r *PgxDailyTrackingRepository) DeleteTrackingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM daily_update_tracking
		WHERE tracking_date < $1;
	`

	tag, err := r.Pool.Exec(ctx, query, busday.DateOnly(cutoff))
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete old tracking rows", err)
	}
	return tag.RowsAffected(), nil
}
