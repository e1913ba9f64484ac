// Package yaml converts tables to and from YAML.
//
// YAML's type system is the loosest of the supported formats, and this
// package resolves the mismatches with fixed policies. On encode, every
// number is emitted as a float, an entirely empty table serializes as an
// empty sequence, and mapping entries holding an explicit null are
// omitted rather than written as a null marker (sequence elements keep
// their nulls). On decode, untagged scalars are typed heuristically:
// boolean spellings first, then numbers, then strings. The heuristic is
// applied to the scalar text regardless of quoting, so a quoted "true"
// still decodes as a boolean.
package yaml

import (
	"bytes"

	"github.com/TerameTechYT/luadata"
)

// Marshal returns the YAML encoding of t.
func Marshal(t *luadata.Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the YAML-encoded data and returns the host value it
// describes: a *luadata.Table for sequences and mappings, or a scalar
// for scalar documents.
func Unmarshal(data []byte, opts ...Option) (any, error) {
	if len(data) == 0 {
		return nil, luadata.ErrEmptyInput
	}
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

type codec struct {
	opts []Option
}

// NewCodec returns a luadata.Codec for YAML.
func NewCodec(opts ...Option) luadata.Codec {
	return &codec{opts: opts}
}

func (c *codec) ContentType() string { return "application/yaml" }

func (c *codec) Marshal(t *luadata.Table) ([]byte, error) {
	return Marshal(t, c.opts...)
}

func (c *codec) Unmarshal(data []byte) (any, error) {
	return Unmarshal(data, c.opts...)
}
