package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

var _ Repository = (*PostgresRepo)(nil)

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) UpsertAuthor(ctx context.Context, a *Author) error {
	const sql = `
		INSERT INTO author_by_id (id, name, personal_name, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			personal_name = EXCLUDED.personal_name,
			updated_at = now()`

	if _, err := r.db.Exec(ctx, sql, a.ID, a.Name, a.PersonalName); err != nil {
		return fmt.Errorf("upsert author %s: %w", a.ID, err)
	}
	return nil
}

func (r *PostgresRepo) FindAuthorByID(ctx context.Context, id string) (Author, error) {
	const sql = `SELECT id, name, personal_name FROM author_by_id WHERE id = $1`

	var a Author
	err := r.db.QueryRow(ctx, sql, id).Scan(&a.ID, &a.Name, &a.PersonalName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, fmt.Errorf("find author %s: %w", id, err)
	}
	return a, nil
}

func (r *PostgresRepo) UpsertWork(ctx context.Context, w *Work) error {
	const sql = `
		INSERT INTO book_by_id (id, name, description, published_date, cover_ids, author_ids, author_names, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			published_date = EXCLUDED.published_date,
			cover_ids = EXCLUDED.cover_ids,
			author_ids = EXCLUDED.author_ids,
			author_names = EXCLUDED.author_names,
			updated_at = now()`

	_, err := r.db.Exec(ctx, sql,
		w.ID, w.Name, w.Description, toDate(w.PublishedDate),
		nonNil(w.CoverIDs), nonNil(w.AuthorIDs), nonNil(w.AuthorNames),
	)
	if err != nil {
		return fmt.Errorf("upsert work %s: %w", w.ID, err)
	}
	return nil
}

func (r *PostgresRepo) FindWorkByID(ctx context.Context, id string) (Work, error) {
	const sql = `
		SELECT id, name, description, published_date, cover_ids, author_ids, author_names
		FROM book_by_id
		WHERE id = $1`

	var (
		w         Work
		published pgtype.Date
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&w.ID, &w.Name, &w.Description, &published,
		&w.CoverIDs, &w.AuthorIDs, &w.AuthorNames,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Work{}, ErrNotFound
		}
		return Work{}, fmt.Errorf("find work %s: %w", id, err)
	}
	if published.Valid {
		t := published.Time
		w.PublishedDate = &t
	}
	return w, nil
}

func toDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// text[] columns are NOT NULL; a nil slice would encode as NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
