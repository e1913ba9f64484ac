package yaml

import (
	"fmt"
	"io"
	"strconv"

	goyaml "gopkg.in/yaml.v3"

	"github.com/TerameTechYT/luadata"
)

// Decoder reads and decodes a YAML value from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the YAML document from the input and returns the host
// value it describes.
func (d *Decoder) Decode() (any, error) {
	o, err := applyOptions(d.opts)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, luadata.ErrEmptyInput
	}

	var doc goyaml.Node
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return nil, &luadata.SyntaxError{Format: "yaml", Err: err}
	}

	ds := &decodeState{depth: o.maxDepth}
	return ds.node(&doc)
}

type decodeState struct {
	depth int
}

func (ds *decodeState) node(n *goyaml.Node) (any, error) {
	ds.depth--
	if ds.depth <= 0 {
		return nil, fmt.Errorf("yaml: maximum nesting depth exceeded")
	}
	defer func() { ds.depth++ }()

	switch n.Kind {
	case goyaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return ds.node(n.Content[0])

	case goyaml.AliasNode:
		return ds.node(n.Alias)

	case goyaml.SequenceNode:
		t := luadata.New()
		for i, elem := range n.Content {
			v, err := ds.node(elem)
			if err != nil {
				return nil, err
			}
			// Null elements stay as explicit entries so the sequence
			// keeps its shape on a later encode.
			t.SetInt(int64(i)+1, v)
		}
		return t, nil

	case goyaml.MappingNode:
		t := luadata.New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != goyaml.ScalarNode {
				return nil, fmt.Errorf("yaml: mapping keys must be scalars, got non-scalar key")
			}
			decoded, err := ds.node(v)
			if err != nil {
				return nil, err
			}
			if decoded == nil {
				// A null value in a mapping is indistinguishable from an
				// absent key in the host model the encoder applies, and
				// is dropped symmetrically with the encode policy.
				continue
			}
			t.SetField(k.Value, decoded)
		}
		return t, nil

	case goyaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return coerceScalar(n.Value), nil

	default:
		// Zero node: an input of pure comments or directives.
		return nil, nil
	}
}

// coerceScalar types a scalar with no schema to guide it. The order is
// fixed: boolean spellings first, then a full-string float parse, then
// the string fallback. Quoting does not exempt a scalar; "true" in
// quotes still becomes a boolean.
func coerceScalar(s string) any {
	switch s {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
