package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/customer-notifier/internal/model"
)

type postgresCustomerRecordRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCustomerRecordRepository(p *pgxpool.Pool) CustomerRecordRepository {
	return &postgresCustomerRecordRepository{pool: p}
}

func (repo *postgresCustomerRecordRepository) FindByID(ctx context.Context, id string) (*model.CustomerRecord, error) {
	q := `SELECT id, default_fingerprint, extra_fingerprint, extra_count, notified, deleted, updated_at
            FROM customer_records WHERE id = $1`

	var rec model.CustomerRecord
	var updatedAt pgtype.Timestamptz

	row := repo.pool.QueryRow(ctx, q, id)
	if err := row.Scan(&rec.ID, &rec.DefaultFingerprint, &rec.ExtraFingerprint, &rec.ExtraCount, &rec.Notified, &rec.Deleted, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if updatedAt.Status == pgtype.Present {
		rec.UpdatedAt = updatedAt.Time
	}
	return &rec, nil
}

func (repo *postgresCustomerRecordRepository) Upsert(ctx context.Context, rec *model.CustomerRecord) error {
	q := `INSERT INTO customer_records(id, default_fingerprint, extra_fingerprint, extra_count, notified, deleted, updated_at)
               VALUES($1, $2, $3, $4, $5, $6, now())
          ON CONFLICT (id) DO UPDATE
                 SET default_fingerprint = EXCLUDED.default_fingerprint,
                     extra_fingerprint = EXCLUDED.extra_fingerprint,
                     extra_count = EXCLUDED.extra_count,
                     notified = EXCLUDED.notified,
                     deleted = EXCLUDED.deleted,
                     updated_at = now()`
	if _, err := repo.pool.Exec(ctx, q, &rec.ID, &rec.DefaultFingerprint, &rec.ExtraFingerprint, &rec.ExtraCount, &rec.Notified, &rec.Deleted); err != nil {
		return err
	}
	return nil
}

func (repo *postgresCustomerRecordRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM customer_records WHERE id = $1"
	if _, err := repo.pool.Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}
