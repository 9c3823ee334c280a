// SPDX-License-Identifier: MIT
//
// options.go: functional options for the loader package.
//
// Option constructors validate and panic on meaningless inputs; iterators
// themselves never panic.

package loader

// DefaultDelimiter separates the two endpoints of a record.
const DefaultDelimiter = ","

// Option customizes an iterator before it reads its first record.
type Option func(*loaderConfig)

// loaderConfig is the resolved set of options shared by all variants.
type loaderConfig struct {
	delimiter string
}

// WithDelimiter sets the literal field separator. Panics on "".
func WithDelimiter(d string) Option {
	if d == "" {
		panic("loader: WithDelimiter(\"\")")
	}
	return func(c *loaderConfig) {
		c.delimiter = d
	}
}

// newConfig resolves opts over the defaults.
func newConfig(opts []Option) loaderConfig {
	c := loaderConfig{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
