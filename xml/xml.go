// Package xml converts tables to and from XML.
//
// Unlike the other formats, XML does not serialize arbitrary tables.
// Both directions work on a fixed element schema:
//
//	{
//	  tag      = "name",       -- required non-empty string
//	  attr     = { k = "v" },  -- optional string-to-string table
//	  text     = "body",       -- optional string
//	  children = { ... },      -- optional sequence of elements
//	}
//
// Decoding always produces tables of this shape, with attr and children
// present (possibly empty) and text omitted when the element has none.
// Output is tab-indented with self-closing empty elements; the special
// characters &<>"' are entity-escaped.
package xml

import (
	"bytes"

	"github.com/TerameTechYT/luadata"
)

// Marshal returns the XML encoding of the element described by t.
func Marshal(t *luadata.Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the XML-encoded data and returns the table for its
// root element.
func Unmarshal(data []byte, opts ...Option) (any, error) {
	if len(data) == 0 {
		return nil, luadata.ErrEmptyInput
	}
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

type codec struct {
	opts []Option
}

// NewCodec returns a luadata.Codec for XML.
func NewCodec(opts ...Option) luadata.Codec {
	return &codec{opts: opts}
}

func (c *codec) ContentType() string { return "application/xml" }

func (c *codec) Marshal(t *luadata.Table) ([]byte, error) {
	return Marshal(t, c.opts...)
}

func (c *codec) Unmarshal(data []byte) (any, error) {
	return Unmarshal(data, c.opts...)
}
