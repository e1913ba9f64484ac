// Package value defines the format-independent intermediate
// representation the encoders produce before handing a tree to a format
// library. Reasoning about sequence/mapping shape happens once, here,
// instead of in every format's native node type.
package value

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "number"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Pair is one mapping entry. Mapping keys are always strings; integer
// table keys have already been coerced by the encoder.
type Pair struct {
	Key   string
	Value Value
}

// Value is a tagged union. Only the field selected by Kind is
// meaningful. Int is produced only under the integer-preserving policy
// (JSON); the other formats normalize numbers to Float on encode.
type Value struct {
	Kind Kind
	B    bool
	I    int64
	F    float64
	S    string
	Seq  []Value
	Map  []Pair
}

// MakeBool returns a Bool value.
func MakeBool(b bool) Value { return Value{Kind: Bool, B: b} }

// MakeInt returns an Int value.
func MakeInt(i int64) Value { return Value{Kind: Int, I: i} }

// MakeFloat returns a Float value.
func MakeFloat(f float64) Value { return Value{Kind: Float, F: f} }

// MakeString returns a String value.
func MakeString(s string) Value { return Value{Kind: String, S: s} }
