package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"greatreads/internal/catalog"
	"greatreads/internal/dump"
)

// UnknownAuthor stands in for author ids missing from the author store.
const UnknownAuthor = "Unknown Author"

// createdLayout is the timestamp format of created.value, always with
// microseconds.
const createdLayout = "2006-01-02T15:04:05.000000"

// ParseWork maps a works dump record onto a Work. AuthorNames is left
// empty; see ResolveAuthorNames.
func ParseWork(rec dump.Record) (*catalog.Work, error) {
	id := dump.StripPrefix(rec.String("key"), dump.WorkKeyPrefix)
	if id == "" {
		return nil, ErrMissingKey
	}

	w := &catalog.Work{
		ID:          id,
		Name:        rec.String("title"),
		Description: description(rec),
		CoverIDs:    []string{},
		AuthorIDs:   []string{},
		AuthorNames: []string{},
	}

	if created, ok := rec.Object("created"); ok {
		value, err := created.RequiredString("value")
		if err != nil {
			return nil, fmt.Errorf("created: %w", err)
		}
		published, err := parseCreated(value)
		if err != nil {
			return nil, err
		}
		w.PublishedDate = &published
	}

	if covers, ok := rec.Array("covers"); ok {
		for i, c := range covers {
			cover, ok := c.Scalar()
			if !ok {
				return nil, fmt.Errorf("covers[%d]: expected string or number, got %s", i, c.Type)
			}
			w.CoverIDs = append(w.CoverIDs, cover)
		}
	}

	if refs, ok := rec.Array("authors"); ok {
		for i, r := range refs {
			ref, ok := r.Object()
			if !ok {
				return nil, fmt.Errorf("authors[%d]: expected object, got %s", i, r.Type)
			}
			author, ok := ref.Object("author")
			if !ok {
				return nil, fmt.Errorf("authors[%d]: missing author reference", i)
			}
			key, err := author.RequiredString("key")
			if err != nil {
				return nil, fmt.Errorf("authors[%d]: %w", i, err)
			}
			w.AuthorIDs = append(w.AuthorIDs, dump.StripPrefix(key, dump.AuthorKeyPrefix))
		}
	}

	return w, nil
}

// description accepts both shapes found in dumps: {"type": "/type/text",
// "value": "..."} and a bare string.
func description(rec dump.Record) string {
	if obj, ok := rec.Object("description"); ok {
		return obj.String("value")
	}
	return rec.String("description")
}

func parseCreated(value string) (time.Time, error) {
	// time.Parse accepts a one-digit hour for "15"; every field is fixed width.
	if len(value) != len(createdLayout) {
		return time.Time{}, fmt.Errorf("created.value %q: want layout %s", value, createdLayout)
	}
	t, err := time.Parse(createdLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("created.value %q: %w", value, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ResolveAuthorNames looks up each id in order and returns the matching
// names, one per id. Ids missing from the store map to UnknownAuthor; any
// other store error aborts resolution.
func ResolveAuthorNames(ctx context.Context, authors catalog.AuthorStore, ids []string) ([]string, error) {
	names := make([]string, len(ids))
	for i, id := range ids {
		a, err := authors.FindAuthorByID(ctx, id)
		switch {
		case err == nil:
			names[i] = a.Name
		case errors.Is(err, catalog.ErrNotFound):
			names[i] = UnknownAuthor
		default:
			return nil, fmt.Errorf("resolve author %s: %w", id, err)
		}
	}
	return names, nil
}
