package json

import (
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/TerameTechYT/luadata"
)

// Decoder reads and decodes a JSON value from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// frame is one in-progress container being assembled from the token
// stream. Frames form a stack whose depth equals the current nesting
// depth; the stack stands in for the recursion a tree-shaped input
// would allow, because the parser delivers a flat event sequence.
type frame struct {
	table   *luadata.Table
	isArray bool
	index   int64 // last filled array slot
	key     string
	hasKey  bool
}

type decodeState struct {
	stack []frame
	root  any
	done  bool
}

// insert stores a completed value into the innermost open container, or
// records it as the document root if no container is open.
func (ds *decodeState) insert(v any) error {
	if len(ds.stack) == 0 {
		ds.root = v
		ds.done = true
		return nil
	}
	f := &ds.stack[len(ds.stack)-1]
	if f.isArray {
		f.index++
		f.table.SetInt(f.index, v)
		return nil
	}
	if !f.hasKey {
		return &luadata.SyntaxError{Format: "json", Err: fmt.Errorf("value without preceding object key")}
	}
	f.table.SetField(f.key, v)
	f.hasKey = false
	return nil
}

// Decode reads one JSON value and returns the host value it describes.
// Trailing non-whitespace data after the value is an error.
func (d *Decoder) Decode() (any, error) {
	o, err := applyOptions(d.opts)
	if err != nil {
		return nil, err
	}

	cr := &countingReader{r: d.r}
	dec := gojson.NewDecoder(cr)
	dec.UseNumber()

	ds := &decodeState{}
	for !ds.done {
		tok, err := dec.Token()
		if err == io.EOF {
			if cr.n == 0 {
				return nil, luadata.ErrEmptyInput
			}
			// Non-empty input that yields no token at all is pure
			// whitespace, a parse failure rather than a missing document.
			return nil, &luadata.SyntaxError{Format: "json", Err: fmt.Errorf("unexpected end of input")}
		}
		if err != nil {
			return nil, &luadata.SyntaxError{Format: "json", Err: err}
		}

		switch tok := tok.(type) {
		case gojson.Delim:
			switch tok {
			case '{', '[':
				if len(ds.stack) >= o.maxDepth {
					return nil, fmt.Errorf("json: maximum nesting depth exceeded")
				}
				ds.stack = append(ds.stack, frame{table: luadata.New(), isArray: tok == '['})
			case '}', ']':
				completed := ds.stack[len(ds.stack)-1].table
				ds.stack = ds.stack[:len(ds.stack)-1]
				if err := ds.insert(completed); err != nil {
					return nil, err
				}
			}
		case string:
			if n := len(ds.stack); n > 0 && !ds.stack[n-1].isArray && !ds.stack[n-1].hasKey {
				ds.stack[n-1].key = tok
				ds.stack[n-1].hasKey = true
				continue
			}
			if err := ds.insert(tok); err != nil {
				return nil, err
			}
		case gojson.Number:
			if err := ds.insert(parseNumber(tok)); err != nil {
				return nil, err
			}
		case float64:
			// Token only yields float64 when UseNumber is off; kept so a
			// change of decoder configuration cannot drop numbers.
			if err := ds.insert(tok); err != nil {
				return nil, err
			}
		case bool:
			if err := ds.insert(tok); err != nil {
				return nil, err
			}
		case nil:
			if err := ds.insert(nil); err != nil {
				return nil, err
			}
		case []byte:
			return nil, fmt.Errorf("binary json values are not supported")
		default:
			return nil, &luadata.SyntaxError{Format: "json", Err: fmt.Errorf("unexpected token %v", tok)}
		}
	}

	if dec.More() {
		return nil, &luadata.SyntaxError{Format: "json", Err: fmt.Errorf("unexpected data after top-level value")}
	}
	return ds.root, nil
}

// countingReader records whether any bytes were consumed, which is the
// only way to tell an empty stream from one holding nothing but
// whitespace: the tokenizer reports both as a bare EOF.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// parseNumber keeps the integer/float distinction of the literal: a
// token that parses as an int64 stays integral, everything else becomes
// a float.
func parseNumber(n gojson.Number) any {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i
	}
	// The tokenizer has already validated the syntax; a literal beyond
	// the float64 range saturates to the infinities, as strtod does.
	f, _ := strconv.ParseFloat(n.String(), 64)
	return f
}
