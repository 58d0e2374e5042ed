// Package realpoly parses, manipulates and renders single-variable
// polynomials with float64 coefficients.
package realpoly

import (
	"fmt"

	"github.com/jonathanmweiss/go-realpoly/field"
	"github.com/rs/zerolog"
)

// Calculator bundles a coefficient field, a polynomial ring and a parser
// sharing one configuration. It holds no mutable state after construction
// and may be used from several goroutines.
type Calculator struct {
	eps         float64
	strict      bool
	concurrency int
	logger      zerolog.Logger

	fld          field.Field
	pr           field.PolyRing
	parser       *Parser
	interpolator *field.Interpolator
	sampler      *Sampler
}

func NewCalculator(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		eps:         field.DefaultEpsilon,
		concurrency: defaultConcurrency,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	fld, err := field.NewRealField(c.eps)
	if err != nil {
		return nil, fmt.Errorf("realpoly: epsilon %v: %w", c.eps, err)
	}

	pr := field.NewSparsePolyRing(fld)
	pr.SetLogger(c.logger)

	c.fld = fld
	c.pr = pr
	c.parser = NewParser(fld, c.strict, c.logger)
	c.interpolator = field.NewInterpolator(pr)
	c.sampler = NewSampler()

	return c, nil
}

func (c *Calculator) Field() field.Field { return c.fld }

func (c *Calculator) Ring() field.PolyRing { return c.pr }

// Zero returns an empty polynomial to be filled with InsertTerm.
func (c *Calculator) Zero() *field.Polynomial {
	return field.NewPolynomial(c.fld, nil)
}

func (c *Calculator) Parse(text string) (*field.Polynomial, error) {
	return c.parser.Parse(text)
}

// MustParse is like Parse but panics on error.
func (c *Calculator) MustParse(text string) *field.Polynomial {
	p, err := c.Parse(text)
	if err != nil {
		panic(err)
	}

	return p
}

func (c *Calculator) Format(p *field.Polynomial) string {
	return p.String()
}

func (c *Calculator) Add(a, b *field.Polynomial) *field.Polynomial {
	return c.pr.AddPoly(a, b)
}

func (c *Calculator) Sub(a, b *field.Polynomial) *field.Polynomial {
	return c.pr.SubPoly(a, b)
}

func (c *Calculator) Mul(a, b *field.Polynomial) *field.Polynomial {
	return c.pr.MulPoly(a, b)
}

func (c *Calculator) MulScalar(a *field.Polynomial, s float64) *field.Polynomial {
	return c.pr.MulScalar(a, s)
}

func (c *Calculator) Derivative(a *field.Polynomial) *field.Polynomial {
	return c.pr.Derivative(a)
}

func (c *Calculator) Integrate(a *field.Polynomial) *field.Polynomial {
	return c.pr.Integrate(a)
}

// Divide returns quotient and remainder with a = quotient*b + remainder.
// It fails with ErrDivisionByZero when b is the zero polynomial.
func (c *Calculator) Divide(a, b *field.Polynomial) (quotient, remainder *field.Polynomial, err error) {
	quotient, remainder, err = c.pr.LongDiv(a, b)
	if err != nil {
		return nil, nil, fmt.Errorf("divide %v by %v: %w", a, b, err)
	}

	return quotient, remainder, nil
}

func (c *Calculator) Evaluate(a *field.Polynomial, x float64) float64 {
	return c.pr.Evaluate(a, x)
}

// GCD returns the monic greatest common divisor of a and b.
func (c *Calculator) GCD(a, b *field.Polynomial) *field.Polynomial {
	return c.pr.GCD(a, b)
}

// FromRoots returns the monic polynomial (x - r_1)...(x - r_n).
func (c *Calculator) FromRoots(roots ...float64) *field.Polynomial {
	return field.PolyProductMonicNegRoots(c.fld, roots)
}

// Product multiplies all polys; the empty product is 1.
func (c *Calculator) Product(polys ...*field.Polynomial) *field.Polynomial {
	return field.PolyProduct(c.pr, polys)
}

// Interpolate returns the polynomial of degree < len(xs) through the points (xs[i], ys[i]).
func (c *Calculator) Interpolate(xs, ys []float64) (*field.Polynomial, error) {
	p, err := c.interpolator.Interpolate(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("interpolate: %w", err)
	}

	return p, nil
}

var defaultCalculator = func() *Calculator {
	c, err := NewCalculator()
	if err != nil {
		panic(err)
	}

	return c
}()

// Parse reads text leniently with the default epsilon; see Parser.
func Parse(text string) (*field.Polynomial, error) { return defaultCalculator.Parse(text) }

// Zero returns an empty polynomial over the default field.
func Zero() *field.Polynomial { return defaultCalculator.Zero() }

func Format(p *field.Polynomial) string { return defaultCalculator.Format(p) }

func Add(a, b *field.Polynomial) *field.Polynomial { return defaultCalculator.Add(a, b) }

func Sub(a, b *field.Polynomial) *field.Polynomial { return defaultCalculator.Sub(a, b) }

func Mul(a, b *field.Polynomial) *field.Polynomial { return defaultCalculator.Mul(a, b) }

func Derivative(a *field.Polynomial) *field.Polynomial { return defaultCalculator.Derivative(a) }

func Integrate(a *field.Polynomial) *field.Polynomial { return defaultCalculator.Integrate(a) }

func Divide(a, b *field.Polynomial) (quotient, remainder *field.Polynomial, err error) {
	return defaultCalculator.Divide(a, b)
}

func Evaluate(a *field.Polynomial, x float64) float64 { return defaultCalculator.Evaluate(a, x) }
