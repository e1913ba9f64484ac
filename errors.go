package luadata

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by every format's Unmarshal when the input is
// empty. There is no document to decode, not even a null one.
var ErrEmptyInput = errors.New("cannot deserialize empty string")

// A CycleError reports a table that directly or transitively contains
// itself. Cyclic tables cannot be serialized to any format.
type CycleError struct {
	Format string
}

func (e *CycleError) Error() string {
	return e.Format + ": cannot serialize cyclic table"
}

// An UnsupportedTypeError reports an attempt to serialize a value with no
// representation in the target format, such as a function or a channel.
type UnsupportedTypeError struct {
	Format string
	Value  any
}

func (e *UnsupportedTypeError) Error() string {
	if e.Value == nil {
		return e.Format + ": unsupported null value for serialization"
	}
	return fmt.Sprintf("%s: unsupported type %T for serialization", e.Format, e.Value)
}

// A KeyTypeError reports a table key that the target format cannot
// represent in its position, such as an integer key in an XML attribute
// table.
type KeyTypeError struct {
	Format string
	In     string
	Key    Key
}

func (e *KeyTypeError) Error() string {
	return e.Format + ": " + e.In + " keys must be strings, got " + e.Key.String()
}

// A SyntaxError wraps a parse or print failure reported by the underlying
// format library. The original message is preserved verbatim.
type SyntaxError struct {
	Format string
	Err    error
}

func (e *SyntaxError) Error() string {
	return e.Format + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }
