package dump

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// DefaultMaxLineBytes bounds a single dump line. Works with long
// descriptions or many editions run to a few megabytes.
const DefaultMaxLineBytes = 16 << 20

// Scanner reads a dump forward-only, one line at a time.
type Scanner struct {
	s    *bufio.Scanner
	line int
}

func NewScanner(r io.Reader, maxLineBytes int) *Scanner {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	initial := 64 * 1024
	if maxLineBytes < initial {
		initial = maxLineBytes
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initial), maxLineBytes)
	return &Scanner{s: s}
}

func (s *Scanner) Scan() bool {
	if !s.s.Scan() {
		return false
	}
	s.line++
	return true
}

// Bytes returns the current line. The slice is only valid until the next Scan.
func (s *Scanner) Bytes() []byte {
	return s.s.Bytes()
}

// Line is the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", s.line+1, err)
	}
	return nil
}

// Open opens a dump file, decompressing it on the fly when the name ends in ".gz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dump %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open gzip dump %s: %w", path, err)
	}
	return &gzipFile{Reader: zr, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return zerr
}
