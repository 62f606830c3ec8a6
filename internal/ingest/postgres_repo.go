package ingest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RunRepository interface {
	CreateRun(ctx context.Context, run *Run) error
	UpdateRun(ctx context.Context, run *Run) error
}

type PostgresRunRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRunRepo(db *pgxpool.Pool) *PostgresRunRepo {
	return &PostgresRunRepo{db: db}
}

// CreateRun inserts run under the id the caller minted.
func (r *PostgresRunRepo) CreateRun(ctx context.Context, run *Run) error {
	const sql = `
		INSERT INTO load_runs (id, started_at, status, authors_path, works_path)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, sql, run.ID, run.StartedAt, run.Status, run.AuthorsPath, run.WorksPath)
	return err
}

func (r *PostgresRunRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE load_runs SET
			finished_at = $1,
			status = $2,
			authors_read = $3,
			authors_upserted = $4,
			authors_skipped = $5,
			works_read = $6,
			works_upserted = $7,
			works_skipped = $8,
			error = $9
		WHERE id = $10`

	_, err := r.db.Exec(ctx, sql,
		run.FinishedAt, run.Status,
		run.Authors.Read, run.Authors.Upserted, run.Authors.Skipped,
		run.Works.Read, run.Works.Upserted, run.Works.Skipped,
		run.Error, run.ID,
	)
	return err
}
