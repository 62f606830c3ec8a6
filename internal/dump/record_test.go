package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWork = `{
	"key": "/works/OL45883W",
	"title": "Café \"Noir\"",
	"revision": 7,
	"latest": true,
	"subtitle": null,
	"description": {"type": "/type/text", "value": "A story."},
	"covers": [8231856, "8231857"],
	"authors": [{"author": {"key": "/authors/OL1A"}}, {"type": "x"}]
}`

func TestRecord_String(t *testing.T) {
	rec := NewRecord([]byte(sampleWork))

	assert.Equal(t, "/works/OL45883W", rec.String("key"))
	assert.Equal(t, `Café "Noir"`, rec.String("title"))
	assert.Equal(t, "7", rec.String("revision"))
	assert.Equal(t, "true", rec.String("latest"))
	assert.Equal(t, "A story.", rec.String("description", "value"))
	assert.Equal(t, "", rec.String("subtitle"), "null renders empty")
	assert.Equal(t, "", rec.String("missing"), "absent renders empty")
	assert.Equal(t, "", rec.String("description"), "objects are not scalars")
}

func TestRecord_RequiredString(t *testing.T) {
	rec := NewRecord([]byte(sampleWork))

	v, err := rec.RequiredString("description", "value")
	require.NoError(t, err)
	assert.Equal(t, "A story.", v)

	_, err = rec.RequiredString("created", "value")
	assert.ErrorContains(t, err, "created.value")

	_, err = rec.RequiredString("revision")
	assert.ErrorContains(t, err, "expected string")
}

func TestRecord_Object(t *testing.T) {
	rec := NewRecord([]byte(sampleWork))

	desc, ok := rec.Object("description")
	require.True(t, ok)
	assert.Equal(t, "/type/text", desc.String("type"))

	_, ok = rec.Object("title")
	assert.False(t, ok)

	_, ok = rec.Object("created")
	assert.False(t, ok)
}

func TestRecord_Array(t *testing.T) {
	rec := NewRecord([]byte(sampleWork))

	covers, ok := rec.Array("covers")
	require.True(t, ok)
	require.Len(t, covers, 2)
	first, ok := covers[0].Scalar()
	require.True(t, ok)
	assert.Equal(t, "8231856", first)
	second, ok := covers[1].Scalar()
	require.True(t, ok)
	assert.Equal(t, "8231857", second)

	authors, ok := rec.Array("authors")
	require.True(t, ok)
	require.Len(t, authors, 2)
	ref, ok := authors[0].Object()
	require.True(t, ok)
	assert.Equal(t, "/authors/OL1A", ref.String("author", "key"))
	_, ok = authors[1].Object()
	assert.True(t, ok)
	_, ok = authors[0].Scalar()
	assert.False(t, ok)

	_, ok = rec.Array("subjects")
	assert.False(t, ok)
	_, ok = rec.Array("title")
	assert.False(t, ok)
}

func TestRecord_EmptyArray(t *testing.T) {
	rec := NewRecord([]byte(`{"covers": []}`))

	covers, ok := rec.Array("covers")
	require.True(t, ok)
	assert.Empty(t, covers)
}
