// Package marshal implements the shared marshalling core: deciding
// whether a table is a sequence or a mapping, guarding against cyclic
// tables, and recursively encoding a table into the value IR. The
// per-format packages translate the resulting tree into their format
// library's native form.
package marshal

import (
	"fmt"

	"github.com/TerameTechYT/luadata"
	"github.com/TerameTechYT/luadata/internal/value"
)

// DefaultMaxDepth bounds nesting in both directions when no explicit
// limit is configured.
const DefaultMaxDepth = 1000

// Policy captures the points where the formats disagree about encoding.
type Policy struct {
	// Format prefixes error messages ("json", "yaml", ...).
	Format string

	// EmptyIsSequence classifies an entirely empty table as a sequence
	// (YAML) instead of a mapping (JSON, TOML).
	EmptyIsSequence bool

	// PreserveIntegers keeps int64 values distinct from floats (JSON).
	// Other formats normalize every number to a float on encode.
	PreserveIntegers bool

	// OmitNullInMapping drops mapping entries whose value is nil (YAML)
	// instead of emitting an explicit null. Sequence elements are never
	// dropped.
	OmitNullInMapping bool

	// MaxDepth bounds nesting; DefaultMaxDepth when zero.
	MaxDepth int
}

// Classify decides the sequence/mapping interpretation of t and returns
// the sequence length when the sequence interpretation holds. A table is
// a sequence when its keys are exactly the integers 1..n with no holes:
// a missing entry inside 1..n, a string key, or an integer key outside
// the range all force the mapping interpretation. An explicit nil entry
// is present, not a hole, so a sequence holding nulls keeps its shape.
// Classification never mutates t.
func Classify(t *luadata.Table, emptyIsSequence bool) (int64, bool) {
	if t.Len() == 0 {
		return 0, emptyIsSequence
	}
	n := t.MaxN()
	if n == 0 {
		return 0, false
	}
	for i := int64(1); i <= n; i++ {
		if _, ok := t.GetInt(i); !ok {
			return 0, false
		}
	}
	for k := range t.All() {
		if !k.IsInt() || k.Int() < 1 || k.Int() > n {
			return 0, false
		}
	}
	return n, true
}

type encoder struct {
	p     Policy
	seen  map[*luadata.Table]struct{}
	depth int
}

// Encode walks root and produces the corresponding value tree under the
// given policy. The cycle guard is scoped to this one call: a table
// reachable through two disjoint branches encodes on both, while a table
// on its own ancestor path fails with a CycleError.
func Encode(root *luadata.Table, p Policy) (value.Value, error) {
	if root == nil {
		return value.Value{}, fmt.Errorf("%s: cannot serialize nil table", p.Format)
	}
	if p.MaxDepth <= 0 {
		p.MaxDepth = DefaultMaxDepth
	}
	e := &encoder{p: p, seen: make(map[*luadata.Table]struct{})}
	return e.table(root)
}

func (e *encoder) value(v any) (value.Value, error) {
	switch v := v.(type) {
	case nil:
		return value.Value{Kind: value.Null}, nil
	case bool:
		return value.MakeBool(v), nil
	case int64:
		if e.p.PreserveIntegers {
			return value.MakeInt(v), nil
		}
		return value.MakeFloat(float64(v)), nil
	case float64:
		return value.MakeFloat(v), nil
	case string:
		return value.MakeString(v), nil
	case *luadata.Table:
		return e.table(v)
	default:
		return value.Value{}, &luadata.UnsupportedTypeError{Format: e.p.Format, Value: v}
	}
}

func (e *encoder) table(t *luadata.Table) (value.Value, error) {
	if e.depth >= e.p.MaxDepth {
		return value.Value{}, fmt.Errorf("%s: maximum nesting depth exceeded", e.p.Format)
	}
	if _, ok := e.seen[t]; ok {
		return value.Value{}, &luadata.CycleError{Format: e.p.Format}
	}
	e.seen[t] = struct{}{}
	e.depth++
	defer func() {
		// Released on every exit path, including errors, so that
		// diamond-shaped sharing stays legal.
		delete(e.seen, t)
		e.depth--
	}()

	if n, isSeq := Classify(t, e.p.EmptyIsSequence); isSeq {
		seq := make([]value.Value, 0, n)
		for i := int64(1); i <= n; i++ {
			elem, _ := t.GetInt(i)
			ev, err := e.value(elem)
			if err != nil {
				return value.Value{}, err
			}
			seq = append(seq, ev)
		}
		return value.Value{Kind: value.Sequence, Seq: seq}, nil
	}

	pairs := make([]value.Pair, 0, t.Len())
	for k, v := range t.All() {
		if v == nil && e.p.OmitNullInMapping {
			continue
		}
		ev, err := e.value(v)
		if err != nil {
			return value.Value{}, err
		}
		pairs = append(pairs, value.Pair{Key: k.String(), Value: ev})
	}
	return value.Value{Kind: value.Mapping, Map: pairs}, nil
}
