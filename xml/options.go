package xml

import (
	"fmt"

	"github.com/TerameTechYT/luadata/internal/marshal"
)

type options struct {
	maxDepth int
}

// Option configures encoding and decoding.
type Option func(*options) error

// MaxDepth sets the maximum element nesting depth accepted in either
// direction. The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("xml: max depth must be a positive integer")
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
