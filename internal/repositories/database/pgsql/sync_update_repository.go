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
	"github.com/vorsorgeapp/pension_backend/internal/utils/mapping"
)

// PgxSyncUpdateRepository implements the sync update repository ports using pgxpool.
type PgxSyncUpdateRepository struct {
	BaseRepository
}

// newPgxSyncUpdateRepository creates a new PgxSyncUpdateRepository.
func newPgxSyncUpdateRepository(db *pgxpool.Pool) *PgxSyncUpdateRepository {
	return &PgxSyncUpdateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const syncUpdateColumns = `update_id, update_type, start_date, end_date, currencies, status,
	error, missing_dates, retry_count, triggered_by, created_at, completed_at`

func scanSyncUpdate(row pgx.Row) (models.SyncUpdate, error) {
	var m models.SyncUpdate
	err := row.Scan(
		&m.UpdateID, &m.UpdateType, &m.StartDate, &m.EndDate, &m.Currencies, &m.Status,
		&m.Error, &m.MissingDates, &m.RetryCount, &m.TriggeredBy, &m.CreatedAt, &m.CompletedAt,
	)
	return m, err
}

// CreateSyncUpdate persists a new synchronization run record.
func (r *PgxSyncUpdateRepository) CreateSyncUpdate(ctx context.Context, update domain.SyncUpdate) error {
	m := mapping.ToModelSyncUpdate(update)
	query := `
		INSERT INTO exchange_rate_updates (` + syncUpdateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.UpdateID, m.UpdateType, m.StartDate, m.EndDate, m.Currencies, m.Status,
		m.Error, m.MissingDates, m.RetryCount, m.TriggeredBy, m.CreatedAt, m.CompletedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to create sync update", err)
	}
	return nil
}

// MarkSyncUpdateCompleted finalizes a run as completed.
func (r *PgxSyncUpdateRepository) MarkSyncUpdateCompleted(ctx context.Context, updateID string, missingDates []time.Time, retryCount int) error {
	// A clean run passes nil; the column is NOT NULL.
	if missingDates == nil {
		missingDates = []time.Time{}
	}
	query := `
		UPDATE exchange_rate_updates
		SET status = $2, missing_dates = $3, retry_count = $4, completed_at = $5
		WHERE update_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query, updateID, string(domain.SyncStatusCompleted), missingDates, retryCount, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark sync update completed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("sync update " + updateID + " not found")
	}
	return nil
}

// MarkSyncUpdateFailed finalizes a run as failed with the escaping error text.
func (r *PgxSyncUpdateRepository) MarkSyncUpdateFailed(ctx context.Context, updateID string, errMsg string) error {
	query := `
		UPDATE exchange_rate_updates
		SET status = $2, error = $3, completed_at = $4
		WHERE update_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query, updateID, string(domain.SyncStatusFailed), errMsg, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark sync update failed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("sync update " + updateID + " not found")
	}
	return nil
}

// FindSyncUpdateByID retrieves a synchronization run by its ID.
func (r *PgxSyncUpdateRepository) FindSyncUpdateByID(ctx context.Context, updateID string) (*domain.SyncUpdate, error) {
	query := `
		SELECT ` + syncUpdateColumns + `
		FROM exchange_rate_updates
		WHERE update_id = $1;
	`

	m, err := scanSyncUpdate(r.Pool.QueryRow(ctx, query, updateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("sync update with ID " + updateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get sync update by ID", err)
	}

	d := mapping.ToDomainSyncUpdate(m)
	return &d, nil
}

// ListRecentSyncUpdates retrieves the most recent runs, newest first.
func (r *PgxSyncUpdateRepository) ListRecentSyncUpdates(ctx context.Context, limit int) ([]domain.SyncUpdate, error) {
	query := `
		SELECT ` + syncUpdateColumns + `
		FROM exchange_rate_updates
		ORDER BY created_at DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list sync updates", err)
	}
	defer rows.Close()

	var updates []domain.SyncUpdate
	for rows.Next() {
		m, err := scanSyncUpdate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sync update", err)
		}
		updates = append(updates, mapping.ToDomainSyncUpdate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sync updates", err)
	}
	return updates, nil
}

// DeleteCompletedSyncUpdatesBefore removes completed runs older than the cutoff.
// Failed runs are kept for operator review.
func (r *PgxSyncUpdateRepository) DeleteCompletedSyncUpdatesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM exchange_rate_updates
		WHERE status = $1 AND created_at < $2;
	`

	tag, err := r.Pool.Exec(ctx, query, string(domain.SyncStatusCompleted), cutoff)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete completed sync updates", err)
	}
	return tag.RowsAffected(), nil
}
