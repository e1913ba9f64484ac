// Package json converts tables to and from JSON.
//
// JSON is the only format in this module that preserves the
// integer/float distinction: an int64 in a table round-trips as a JSON
// integer literal, a float64 always carries a decimal point or exponent.
// Output is compact by default; use Indent for readable output.
package json

import (
	"bytes"

	"github.com/TerameTechYT/luadata"
)

// Marshal returns the JSON encoding of t.
func Marshal(t *luadata.Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the JSON-encoded data and returns the host value it
// describes: a *luadata.Table for objects and arrays, or a scalar for
// scalar documents.
func Unmarshal(data []byte, opts ...Option) (any, error) {
	if len(data) == 0 {
		return nil, luadata.ErrEmptyInput
	}
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

type codec struct {
	opts []Option
}

// NewCodec returns a luadata.Codec for JSON.
func NewCodec(opts ...Option) luadata.Codec {
	return &codec{opts: opts}
}

func (c *codec) ContentType() string { return "application/json" }

func (c *codec) Marshal(t *luadata.Table) ([]byte, error) {
	return Marshal(t, c.opts...)
}

func (c *codec) Unmarshal(data []byte) (any, error) {
	return Unmarshal(data, c.opts...)
}
