package toml

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	bstoml "github.com/BurntSushi/toml"

	"github.com/TerameTechYT/luadata"
	"github.com/TerameTechYT/luadata/internal/marshal"
	"github.com/TerameTechYT/luadata/internal/value"
)

// Encoder writes TOML-encoded tables to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the TOML encoding of t to the stream.
func (e *Encoder) Encode(t *luadata.Table) error {
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}

	v, err := marshal.Encode(t, marshal.Policy{
		Format:   "toml",
		MaxDepth: o.maxDepth,
	})
	if err != nil {
		return err
	}
	if v.Kind != value.Mapping {
		return fmt.Errorf("toml: top-level value must be a table, not an array")
	}

	native, err := toNative(v)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := bstoml.NewEncoder(&buf)
	enc.Indent = strings.Repeat(" ", o.indent)
	if err := enc.Encode(native); err != nil {
		return &luadata.SyntaxError{Format: "toml", Err: err}
	}
	_, err = e.w.Write(buf.Bytes())
	return err
}

// toNative translates the value tree into the plain maps and slices the
// TOML library serializes. Key order inside tables is left to the
// library; TOML has no null, so a Null value anywhere is an error.
func toNative(v value.Value) (any, error) {
	switch v.Kind {
	case value.Null:
		return nil, &luadata.UnsupportedTypeError{Format: "toml"}
	case value.Bool:
		return v.B, nil
	case value.Float:
		return v.F, nil
	case value.String:
		return v.S, nil
	case value.Sequence:
		arr := make([]any, 0, len(v.Seq))
		for _, elem := range v.Seq {
			n, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, n)
		}
		return arr, nil
	case value.Mapping:
		tbl := make(map[string]any, len(v.Map))
		for _, pair := range v.Map {
			n, err := toNative(pair.Value)
			if err != nil {
				return nil, err
			}
			tbl[pair.Key] = n
		}
		return tbl, nil
	default:
		return nil, fmt.Errorf("toml: unexpected value kind %s", v.Kind)
	}
}
