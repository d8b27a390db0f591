package mint

import "fmt"

const (
	defaultIndent   = 2
	defaultMaxDepth = 1000
)

// options holds the resolved configuration shared by the encoder,
// decoder and validator.
type options struct {
	indent   int
	compact  bool
	sortKeys bool
	strict   bool
	maxDepth int
}

// Option configures encoding or decoding behavior. Options are applied
// in order; an invalid option value surfaces as an error from the call
// it was passed to.
type Option func(*options) error

func newOptions(opts []Option) (options, error) {
	o := options{
		indent:   defaultIndent,
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Indent sets the indentation unit in spaces. The default is 2.
//
// On encode it controls the emitted block indentation. On decode and
// validation it is the unit indentation is checked against.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return fmt.Errorf("mint: indent must be a positive integer")
		}
		o.indent = n
		return nil
	}
}

// Compact enables compact mode: common status words such as "completed"
// or "failed" encode as single-character symbols. Decoding a symbol
// yields its canonical word, not necessarily the original one, so
// compact output does not round-trip synonyms.
func Compact() Option {
	return func(o *options) error {
		o.compact = true
		return nil
	}
}

// SortKeys makes the encoder emit object keys in sorted order instead
// of insertion order.
func SortKeys() Option {
	return func(o *options) error {
		o.sortKeys = true
		return nil
	}
}

// Strict makes the decoder report syntax errors as ParseErrors instead
// of silently recovering: mismatched table rows, stray indented lines,
// lines without a colon inside an object block, duplicate keys, and
// indentation that is not a multiple of the configured unit.
func Strict() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}

// MaxDepth sets the maximum nesting depth for encoding and decoding.
// This bounds recursion on pathological inputs. The default is 1000.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("mint: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
