package luadata

import (
	"fmt"
	"iter"
	"math"
	"strconv"
)

// Key is a table key: an integer or a string. The zero Key is the empty
// string key.
type Key struct {
	str   string
	num   int64
	isInt bool
}

// IntKey returns the integer key i.
func IntKey(i int64) Key { return Key{num: i, isInt: true} }

// StringKey returns the string key s.
func StringKey(s string) Key { return Key{str: s} }

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of k, or 0 for a string key.
func (k Key) Int() int64 {
	if k.isInt {
		return k.num
	}
	return 0
}

// String returns the string form of k. Integer keys are rendered in
// decimal, matching Lua's number-to-string key coercion.
func (k Key) String() string {
	if k.isInt {
		return strconv.FormatInt(k.num, 10)
	}
	return k.str
}

// Table is an order-preserving associative container with integer or
// string keys and dynamically typed values. It is the host value every
// format in this module serializes from and deserializes into.
//
// Values may be nil (an explicit null entry, distinct from an absent
// key), bool, int64, float64, string, or *Table. Numeric Go types are
// normalized on insertion: signed integers to int64, unsigned integers
// and floats that overflow or carry fractions to float64. Any other type
// may be stored but will be rejected at serialization time.
//
// A Table is not safe for concurrent mutation.
type Table struct {
	keys  []Key
	items map[Key]any
}

// New returns an empty table.
func New() *Table {
	return &Table{items: make(map[Key]any)}
}

// normKey converts a dynamically typed key to a Key. Integral floats
// collapse to integer keys, as in Lua; non-integral floats are rejected.
func normKey(key any) (Key, error) {
	switch k := key.(type) {
	case Key:
		return k, nil
	case string:
		return StringKey(k), nil
	case int:
		return IntKey(int64(k)), nil
	case int32:
		return IntKey(int64(k)), nil
	case int64:
		return IntKey(k), nil
	case float64:
		if k != math.Trunc(k) || math.IsInf(k, 0) || math.IsNaN(k) {
			return Key{}, fmt.Errorf("luadata: table key must be an integer or a string, got float %v", k)
		}
		return IntKey(int64(k)), nil
	default:
		return Key{}, fmt.Errorf("luadata: table key must be an integer or a string, got %T", key)
	}
}

// normValue normalizes numeric value types so that the rest of the
// module only ever sees int64 and float64.
func normValue(value any) any {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return float64(v)
		}
		return int64(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return float64(v)
		}
		return int64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

// Set stores value under key. A nil value is stored as an explicit null
// entry; use Delete to remove a key. Overwriting an existing key keeps
// its position in the iteration order.
func (t *Table) Set(key, value any) error {
	k, err := normKey(key)
	if err != nil {
		return err
	}
	t.set(k, value)
	return nil
}

// SetInt stores value under the integer key i. It returns t.
func (t *Table) SetInt(i int64, value any) *Table {
	t.set(IntKey(i), value)
	return t
}

// SetField stores value under the string key name. It returns t.
func (t *Table) SetField(name string, value any) *Table {
	t.set(StringKey(name), value)
	return t
}

func (t *Table) set(k Key, value any) {
	if _, ok := t.items[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.items[k] = normValue(value)
}

// Get returns the value stored under key and whether the key is present.
// An explicit null entry is present with a nil value.
func (t *Table) Get(key any) (any, bool) {
	k, err := normKey(key)
	if err != nil {
		return nil, false
	}
	v, ok := t.items[k]
	return v, ok
}

// GetInt returns the value stored under the integer key i.
func (t *Table) GetInt(i int64) (any, bool) {
	v, ok := t.items[IntKey(i)]
	return v, ok
}

// GetField returns the value stored under the string key name.
func (t *Table) GetField(name string) (any, bool) {
	v, ok := t.items[StringKey(name)]
	return v, ok
}

// Delete removes key from the table, if present.
func (t *Table) Delete(key any) {
	k, err := normKey(key)
	if err != nil {
		return
	}
	if _, ok := t.items[k]; !ok {
		return
	}
	delete(t.items, k)
	for i, existing := range t.keys {
		if existing == k {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.keys) }

// MaxN returns the largest positive integer key present in the table,
// or 0 if there is none.
func (t *Table) MaxN() int64 {
	var n int64
	for _, k := range t.keys {
		if k.isInt && k.num > n {
			n = k.num
		}
	}
	return n
}

// All iterates over the table's entries in insertion order.
func (t *Table) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, k := range t.keys {
			if !yield(k, t.items[k]) {
				return
			}
		}
	}
}

// Equal reports whether t and o hold the same keys and deeply equal
// values, independent of insertion order. Numeric values compare by kind:
// an int64 never equals a float64. Equal must not be called on cyclic
// tables.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.keys) != len(o.keys) {
		return false
	}
	for k, v := range t.items {
		ov, ok := o.items[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	if at, ok := a.(*Table); ok {
		bt, ok := b.(*Table)
		return ok && at.Equal(bt)
	}
	if _, ok := b.(*Table); ok {
		return false
	}
	return a == b
}
