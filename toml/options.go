package toml

import (
	"fmt"

	"github.com/TerameTechYT/luadata/internal/marshal"
)

const defaultIndent = 2

type options struct {
	indent   int
	maxDepth int
}

// Option configures encoding and decoding.
type Option func(*options) error

// Indent sets the number of spaces nested tables are indented by in
// encoded output. The default is 2.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("toml: indent spaces cannot be negative")
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
			return fmt.Errorf("toml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

func applyOptions(opts []Option) (options, error) {
	o := options{indent: defaultIndent, maxDepth: marshal.DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}
