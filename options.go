package realpoly

import "github.com/rs/zerolog"

const defaultConcurrency = 4

// Option configures a Calculator.
type Option func(*Calculator)

// WithEpsilon sets the magnitude below which coefficients are dropped and
// compare equal. NewCalculator rejects non-positive values.
func WithEpsilon(eps float64) Option {
	return func(c *Calculator) { c.eps = eps }
}

// WithStrictParsing makes Parse fail on the first fragment it cannot read
// instead of skipping it.
func WithStrictParsing(strict bool) Option {
	return func(c *Calculator) { c.strict = strict }
}

// WithLogger sets the logger shared by the parser and the polynomial ring.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) { c.logger = l }
}

// WithConcurrency bounds the goroutines used by EvaluateAll.
func WithConcurrency(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.concurrency = n
		}
	}
}
