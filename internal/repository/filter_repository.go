package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/opsdesk/backend/internal/model"
)

var ErrFilterNotFound = errors.New("filter not found")

// Dates are written as ::date and read back as ::text so the driver never
// turns them into instants.
const filterColumns = `id, user_id, filter_key, start_date::text AS start_date, end_date::text AS end_date,
	preset, created_at, updated_at`

// Schema creates the filter table. It is used by tests and first-run setup.
const Schema = `
CREATE TABLE IF NOT EXISTS date_range_filters (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	filter_key TEXT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	preset TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, filter_key),
	CHECK (start_date <= end_date)
);`

type FilterRepository struct {
	db *sqlx.DB
}

func NewFilterRepository(db *sqlx.DB) *FilterRepository {
	return &FilterRepository{db: db}
}

// Upsert stores the filter, replacing any previous range under the same key.
func (r *FilterRepository) Upsert(ctx context.Context, f *model.RangeFilter) error {
	query := `
		INSERT INTO date_range_filters (id, user_id, filter_key, start_date, end_date, preset, created_at, updated_at)
		VALUES ($1, $2, $3, $4::date, $5::date, $6, NOW(), NOW())
		ON CONFLICT (user_id, filter_key)
		DO UPDATE SET start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
			preset = EXCLUDED.preset, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return r.db.QueryRowxContext(ctx, query,
		f.ID, f.UserID, f.Key, f.StartDate, f.EndDate, f.Preset,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FilterRepository) GetByKey(ctx context.Context, userID uuid.UUID, key string) (*model.RangeFilter, error) {
	var f model.RangeFilter
	query := `SELECT ` + filterColumns + ` FROM date_range_filters WHERE user_id = $1 AND filter_key = $2`
	err := r.db.GetContext(ctx, &f, query, userID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFilterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FilterRepository) List(ctx context.Context, userID uuid.UUID) ([]model.RangeFilter, error) {
	var filters []model.RangeFilter
	query := `SELECT ` + filterColumns + ` FROM date_range_filters WHERE user_id = $1 ORDER BY filter_key`
	err := r.db.SelectContext(ctx, &filters, query, userID)
	return filters, err
}

func (r *FilterRepository) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	query := `DELETE FROM date_range_filters WHERE user_id = $1 AND filter_key = $2`
	result, err := r.db.ExecContext(ctx, query, userID, key)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFilterNotFound
	}
	return nil
}
