package yaml

import (
	"io"
	"math"
	"strconv"
	"strings"

	goyaml "gopkg.in/yaml.v3"

	"github.com/TerameTechYT/luadata"
	"github.com/TerameTechYT/luadata/internal/marshal"
	"github.com/TerameTechYT/luadata/internal/value"
)

// Encoder writes YAML-encoded tables to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the YAML encoding of t to the stream.
func (e *Encoder) Encode(t *luadata.Table) error {
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}

	v, err := marshal.Encode(t, marshal.Policy{
		Format:            "yaml",
		EmptyIsSequence:   true,
		OmitNullInMapping: true,
		MaxDepth:          o.maxDepth,
	})
	if err != nil {
		return err
	}

	enc := goyaml.NewEncoder(e.w)
	enc.SetIndent(o.indent)
	if err := enc.Encode(toNode(v)); err != nil {
		enc.Close()
		return &luadata.SyntaxError{Format: "yaml", Err: err}
	}
	if err := enc.Close(); err != nil {
		return &luadata.SyntaxError{Format: "yaml", Err: err}
	}
	return nil
}

// toNode translates the value tree into the library's native node tree.
// Tags are set explicitly; the emitter quotes strings whose text would
// otherwise resolve as a boolean, number or null.
func toNode(v value.Value) *goyaml.Node {
	switch v.Kind {
	case value.Bool:
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.B)}
	case value.Float:
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!float", Value: formatFloat(v.F)}
	case value.String:
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!str", Value: v.S}
	case value.Sequence:
		n := &goyaml.Node{Kind: goyaml.SequenceNode, Tag: "!!seq"}
		n.Content = make([]*goyaml.Node, 0, len(v.Seq))
		for _, elem := range v.Seq {
			n.Content = append(n.Content, toNode(elem))
		}
		return n
	case value.Mapping:
		n := &goyaml.Node{Kind: goyaml.MappingNode, Tag: "!!map"}
		n.Content = make([]*goyaml.Node, 0, 2*len(v.Map))
		for _, pair := range v.Map {
			n.Content = append(n.Content,
				&goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!str", Value: pair.Key},
				toNode(pair.Value))
		}
		return n
	default:
		return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// formatFloat renders f so that its implicit resolution matches the
// float tag: integral values keep a trailing ".0", the non-finite
// values use the YAML spellings.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
