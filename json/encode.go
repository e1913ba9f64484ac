package json

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/TerameTechYT/luadata"
	"github.com/TerameTechYT/luadata/internal/marshal"
	"github.com/TerameTechYT/luadata/internal/value"
)

// Encoder writes JSON-encoded tables to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the JSON encoding of t to the stream.
func (e *Encoder) Encode(t *luadata.Table) error {
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}

	v, err := marshal.Encode(t, marshal.Policy{
		Format:           "json",
		PreserveIntegers: true,
		MaxDepth:         o.maxDepth,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return err
	}
	out := buf.Bytes()

	if o.indent > 0 {
		var indented bytes.Buffer
		if err := gojson.Indent(&indented, out, "", strings.Repeat(" ", o.indent)); err != nil {
			return &luadata.SyntaxError{Format: "json", Err: err}
		}
		out = indented.Bytes()
	}

	_, err = e.w.Write(out)
	return err
}

// writeValue emits v as compact JSON. Objects are written in table
// order; the standard library's map marshalling would sort keys, which
// is why the tree is assembled here and only scalars are delegated.
func writeValue(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind {
	case value.Null:
		buf.WriteString("null")
	case value.Bool:
		buf.WriteString(strconv.FormatBool(v.B))
	case value.Int:
		buf.WriteString(strconv.FormatInt(v.I, 10))
	case value.Float:
		buf.WriteString(formatFloat(v.F))
	case value.String:
		return writeString(buf, v.S)
	case value.Sequence:
		buf.WriteByte('[')
		for i, elem := range v.Seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.Mapping:
		buf.WriteByte('{')
		for i, pair := range v.Map {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, pair.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, pair.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	escaped, err := gojson.Marshal(s)
	if err != nil {
		return &luadata.SyntaxError{Format: "json", Err: err}
	}
	buf.Write(escaped)
	return nil
}

// formatFloat renders f so that it reads back as a float: a bare
// integer mantissa gets a trailing ".0". NaN and the infinities have no
// JSON representation and degrade to null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
