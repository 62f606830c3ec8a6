package dump

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Lines(t *testing.T) {
	s := NewScanner(strings.NewReader("a\nb\r\n\nc"), 0)

	var lines []string
	var numbers []int
	for s.Scan() {
		lines = append(lines, string(s.Bytes()))
		numbers = append(numbers, s.Line())
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)
	assert.Equal(t, []int{1, 2, 3, 4}, numbers)
}

func TestScanner_LineTooLong(t *testing.T) {
	s := NewScanner(strings.NewReader("short\n"+strings.Repeat("x", 128)+"\n"), 64)

	require.True(t, s.Scan())
	assert.False(t, s.Scan())
	assert.ErrorContains(t, s.Err(), "read line 2")
}

func TestOpen_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authors.txt")
	require.NoError(t, os.WriteFile(path, []byte("line\n"), 0644))

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(b))
}

func TestOpen_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authors.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("compressed line\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "compressed line\n", string(b))
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
