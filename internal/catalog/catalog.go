package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by point lookups when no record has the id.
var ErrNotFound = errors.New("catalog: not found")

// Author is a row of author_by_id.
type Author struct {
	ID           string
	Name         string
	PersonalName string
}

// Work is a row of book_by_id. AuthorNames is positionally aligned with AuthorIDs.
type Work struct {
	ID            string
	Name          string
	Description   string
	PublishedDate *time.Time
	CoverIDs      []string
	AuthorIDs     []string
	AuthorNames   []string
}

// AuthorStore persists authors keyed by id. UpsertAuthor fully replaces any
// existing row.
type AuthorStore interface {
	UpsertAuthor(ctx context.Context, author *Author) error
	FindAuthorByID(ctx context.Context, id string) (Author, error)
}

// WorkStore persists works keyed by id. UpsertWork fully replaces any
// existing row.
type WorkStore interface {
	UpsertWork(ctx context.Context, work *Work) error
	FindWorkByID(ctx context.Context, id string) (Work, error)
}

// Repository is the full store the loader writes into.
type Repository interface {
	AuthorStore
	WorkStore
}
