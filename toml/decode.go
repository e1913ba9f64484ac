package toml

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	bstoml "github.com/BurntSushi/toml"

	"github.com/TerameTechYT/luadata"
)

// Decoder reads and decodes a TOML document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the TOML document from the input and returns the table
// it describes.
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

	var raw map[string]any
	md, err := bstoml.Decode(string(data), &raw)
	if err != nil {
		return nil, &luadata.SyntaxError{Format: "toml", Err: err}
	}

	ds := &decodeState{order: childOrder(md.Keys()), depth: o.maxDepth}
	return ds.table(raw, "")
}

// Paths into the document are joined with NUL, which cannot occur in a
// bare or quoted TOML key's decoded form in practice.
func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "\x00" + name
}

// childOrder indexes the document's key order by parent path. The
// library decodes into unordered maps; the metadata key list is the
// only record of source order, so it drives iteration during rebuild.
func childOrder(keys []bstoml.Key) map[string][]string {
	order := make(map[string][]string)
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if len(k) == 0 {
			continue
		}
		parent := strings.Join(k[:len(k)-1], "\x00")
		full := strings.Join(k, "\x00")
		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}
		order[parent] = append(order[parent], k[len(k)-1])
	}
	return order
}

type decodeState struct {
	order map[string][]string
	depth int
}

func (ds *decodeState) table(m map[string]any, path string) (*luadata.Table, error) {
	ds.depth--
	if ds.depth <= 0 {
		return nil, fmt.Errorf("toml: maximum nesting depth exceeded")
	}
	defer func() { ds.depth++ }()

	t := luadata.New()
	for _, name := range ds.names(m, path) {
		v, err := ds.value(m[name], childPath(path, name))
		if err != nil {
			return nil, err
		}
		t.SetField(name, v)
	}
	return t, nil
}

// names returns m's keys in source order, falling back to sorted order
// for keys the metadata does not cover.
func (ds *decodeState) names(m map[string]any, path string) []string {
	names := make([]string, 0, len(m))
	used := make(map[string]struct{}, len(m))
	for _, name := range ds.order[path] {
		if _, ok := m[name]; ok {
			if _, dup := used[name]; dup {
				continue
			}
			used[name] = struct{}{}
			names = append(names, name)
		}
	}
	var rest []string
	for name := range m {
		if _, ok := used[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func (ds *decodeState) value(v any, path string) (any, error) {
	switch v := v.(type) {
	case bool, string, float64:
		return v, nil
	case int64:
		// Numbers normalize to floats on this path.
		return float64(v), nil
	case time.Time:
		// Datetimes pass through as strings.
		return v.Format(time.RFC3339), nil
	case map[string]any:
		return ds.table(v, path)
	case []map[string]any:
		t := luadata.New()
		for i, elem := range v {
			sub, err := ds.table(elem, path)
			if err != nil {
				return nil, err
			}
			t.SetInt(int64(i)+1, sub)
		}
		return t, nil
	case []any:
		ds.depth--
		if ds.depth <= 0 {
			return nil, fmt.Errorf("toml: maximum nesting depth exceeded")
		}
		defer func() { ds.depth++ }()
		t := luadata.New()
		for i, elem := range v {
			sub, err := ds.value(elem, path)
			if err != nil {
				return nil, err
			}
			t.SetInt(int64(i)+1, sub)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("toml: cannot decode value of type %T", v)
	}
}
