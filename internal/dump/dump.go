// Package dump reads Open Library style dump files, where every line carries
// a type tag and some tab separated metadata followed by one JSON object.
package dump

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

const (
	AuthorKeyPrefix = "/authors/"
	WorkKeyPrefix   = "/works/"
)

var (
	// ErrNoPayload is returned when a line carries no JSON object at all.
	ErrNoPayload = errors.New("line has no json payload")
	// ErrMalformedPayload is returned when the embedded object is not well-formed JSON.
	ErrMalformedPayload = errors.New("malformed json payload")
)

// ExtractPayload returns the line from its first '{' onwards. Everything
// before the object (type tag, key, revision, timestamp) is discarded.
func ExtractPayload(line []byte) ([]byte, error) {
	start := bytes.IndexByte(line, '{')
	if start < 0 {
		return nil, ErrNoPayload
	}
	return bytes.TrimRight(line[start:], " \t\r\n"), nil
}

// ParseLine extracts and validates the JSON object embedded in line.
func ParseLine(line []byte) (Record, error) {
	payload, err := ExtractPayload(line)
	if err != nil {
		return Record{}, err
	}
	if !json.Valid(payload) {
		return Record{}, ErrMalformedPayload
	}
	return Record{data: payload}, nil
}

// StripPrefix turns a path style key such as "/authors/OL1A" into its bare
// identifier. Keys without the prefix are returned unchanged.
func StripPrefix(key, prefix string) string {
	return strings.TrimPrefix(key, prefix)
}
