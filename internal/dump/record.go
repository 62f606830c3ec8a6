package dump

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

// Record is one parsed dump object. Lookups never fail on absent fields:
// scalars fall back to "" and nested values report whether they exist.
type Record struct {
	data []byte
}

// NewRecord wraps an already validated JSON object.
func NewRecord(data []byte) Record {
	return Record{data: data}
}

// String returns the scalar at keys. Numbers and booleans are rendered as
// their JSON text; absent, null and non-scalar values yield "".
func (r Record) String(keys ...string) string {
	value, typ, _, err := jsonparser.Get(r.data, keys...)
	if err != nil {
		return ""
	}
	s, _ := scalar(value, typ)
	return s
}

// RequiredString returns the string at keys or an error naming the path
// when it is absent or of another type.
func (r Record) RequiredString(keys ...string) (string, error) {
	path := strings.Join(keys, ".")
	value, typ, _, err := jsonparser.Get(r.data, keys...)
	if err != nil {
		return "", fmt.Errorf("field %s: %w", path, err)
	}
	if typ != jsonparser.String {
		return "", fmt.Errorf("field %s: expected string, got %s", path, typ)
	}
	return unescape(value), nil
}

// Object returns the nested object at keys.
func (r Record) Object(keys ...string) (Record, bool) {
	value, typ, _, err := jsonparser.Get(r.data, keys...)
	if err != nil || typ != jsonparser.Object {
		return Record{}, false
	}
	return Record{data: value}, true
}

// Array returns the elements of the array at keys in source order.
func (r Record) Array(keys ...string) ([]Value, bool) {
	value, typ, _, err := jsonparser.Get(r.data, keys...)
	if err != nil || typ != jsonparser.Array {
		return nil, false
	}

	values := []Value{}
	var elemErr error
	_, err = jsonparser.ArrayEach(value, func(elem []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil {
			elemErr = err
			return
		}
		values = append(values, Value{data: elem, Type: dataType})
	})
	if err != nil || elemErr != nil {
		return nil, false
	}
	return values, true
}

// Value is a single array element.
type Value struct {
	data []byte
	Type jsonparser.ValueType
}

// Object returns the element as a record when it is an object.
func (v Value) Object() (Record, bool) {
	if v.Type != jsonparser.Object {
		return Record{}, false
	}
	return Record{data: v.data}, true
}

// Scalar returns the element as a string when it is a string, number or boolean.
func (v Value) Scalar() (string, bool) {
	return scalar(v.data, v.Type)
}

func scalar(value []byte, typ jsonparser.ValueType) (string, bool) {
	switch typ {
	case jsonparser.String:
		return unescape(value), true
	case jsonparser.Number, jsonparser.Boolean:
		return string(value), true
	default:
		return "", false
	}
}

func unescape(value []byte) string {
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return string(value)
	}
	return s
}
