package ingest

import (
	"greatreads/internal/catalog"
	"greatreads/internal/dump"
)

// ParseAuthor maps an authors dump record onto an Author.
func ParseAuthor(rec dump.Record) (*catalog.Author, error) {
	id := dump.StripPrefix(rec.String("key"), dump.AuthorKeyPrefix)
	if id == "" {
		return nil, ErrMissingKey
	}
	return &catalog.Author{
		ID:           id,
		Name:         rec.String("name"),
		PersonalName: rec.String("personal_name"),
	}, nil
}
