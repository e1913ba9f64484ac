// Package toml converts tables to and from TOML.
//
// TOML is stricter than the host model in two ways this package does
// not paper over: the top-level value must be a mapping-shaped table,
// and there is no null, so serializing a table holding an explicit nil
// entry fails. Numbers are normalized to floats on both paths, and
// datetimes decode as RFC 3339 strings.
package toml

import (
	"bytes"

	"github.com/TerameTechYT/luadata"
)

// Marshal returns the TOML encoding of t. The table must classify as a
// mapping; an array-shaped table has no TOML document form.
func Marshal(t *luadata.Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the TOML-encoded data and returns the table it
// describes. A TOML document is always a table at the top level.
func Unmarshal(data []byte, opts ...Option) (any, error) {
	if len(data) == 0 {
		return nil, luadata.ErrEmptyInput
	}
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

type codec struct {
	opts []Option
}

// NewCodec returns a luadata.Codec for TOML.
func NewCodec(opts ...Option) luadata.Codec {
	return &codec{opts: opts}
}

func (c *codec) ContentType() string { return "application/toml" }

func (c *codec) Marshal(t *luadata.Table) ([]byte, error) {
	return Marshal(t, c.opts...)
}

func (c *codec) Unmarshal(data []byte) (any, error) {
	return Unmarshal(data, c.opts...)
}
