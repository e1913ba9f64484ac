package json

import (
	"fmt"

	"github.com/TerameTechYT/luadata/internal/marshal"
)

type options struct {
	indent   int
	maxDepth int
}

// Option configures encoding and decoding.
type Option func(*options) error

// Indent makes the encoder emit indented output with n spaces per
// nesting level. The default is compact output.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("json: indent spaces cannot be negative")
		}
		o.indent = n
		return nil
	}
}

// MaxDepth sets the maximum nesting depth accepted in either direction.
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("json: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

func applyOptions(opts []Option) (options, error) {
	o := options{maxDepth: marshal.DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}
