package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"greatreads/internal/catalog"
)

// TestAuthor is a fixture matching AuthorLine("OL1A", "Jane Doe").
var TestAuthor = catalog.Author{
	ID:           "OL1A",
	Name:         "Jane Doe",
	PersonalName: "",
}

// MemoryStore is an in-memory catalog.Repository with call counters.
type MemoryStore struct {
	mu      sync.Mutex
	authors map[string]catalog.Author
	works   map[string]catalog.Work

	AuthorUpserts int
	WorkUpserts   int
	AuthorLookups int
}

var _ catalog.Repository = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		authors: map[string]catalog.Author{},
		works:   map[string]catalog.Work{},
	}
}

func (m *MemoryStore) UpsertAuthor(_ context.Context, a *catalog.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AuthorUpserts++
	m.authors[a.ID] = *a
	return nil
}

func (m *MemoryStore) FindAuthorByID(_ context.Context, id string) (catalog.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AuthorLookups++
	a, ok := m.authors[id]
	if !ok {
		return catalog.Author{}, catalog.ErrNotFound
	}
	return a, nil
}

func (m *MemoryStore) UpsertWork(_ context.Context, w *catalog.Work) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WorkUpserts++
	m.works[w.ID] = *w
	return nil
}

func (m *MemoryStore) FindWorkByID(_ context.Context, id string) (catalog.Work, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.works[id]
	if !ok {
		return catalog.Work{}, catalog.ErrNotFound
	}
	return w, nil
}

// Authors returns a copy of the stored authors keyed by id.
func (m *MemoryStore) Authors() map[string]catalog.Author {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]catalog.Author, len(m.authors))
	for k, v := range m.authors {
		out[k] = v
	}
	return out
}

// Works returns a copy of the stored works keyed by id.
func (m *MemoryStore) Works() map[string]catalog.Work {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]catalog.Work, len(m.works))
	for k, v := range m.works {
		out[k] = v
	}
	return out
}

// AuthorLine renders a dump line for an author in the Open Library layout.
func AuthorLine(id, name string) string {
	return "/type/author\t/authors/" + id + "\t1\t2008-04-01T03:28:50.625462\t" +
		`{"name": "` + name + `", "key": "/authors/` + id + `", "type": {"key": "/type/author"}, "revision": 1}`
}

// WorkLine renders a dump line for a work whose JSON body is payload.
func WorkLine(id, payload string) string {
	return "/type/work\t/works/" + id + "\t1\t2009-12-11T01:57:19.964652\t" + payload
}

// WriteDump writes lines to a file in a fresh temp dir and returns its path.
func WriteDump(t testing.TB, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write dump %s: %v", path, err)
	}
	return path
}
