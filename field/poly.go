package field

import (
	"errors"
	"math"
	"slices"
)

// MaxExp is the largest exponent a term may carry, so that Degree always fits an int.
const MaxExp uint = math.MaxInt

var ErrExponentOverflow = errors.New("exponent exceeds MaxExp")

// Term is the monomial Coeff*x^Exp.
type Term struct {
	Coeff float64
	Exp   uint
}

// Polynomial is a canonical term list. The zero value is the zero
// polynomial over Reals().
type Polynomial struct {
	f Field
	// strictly decreasing by Exp, no coefficient with |c| < eps.
	terms []Term
}

/*
NewPolynomial expects the coefficients ordered from lowest to highest degree.
(e.g. [1, 2, 3] is 1 + 2x + 3x^2). A nil or empty slice gives the zero polynomial.
*/
func NewPolynomial(f Field, coeffs []float64) *Polynomial {
	p := &Polynomial{f: f}
	for i := len(coeffs) - 1; i >= 0; i-- {
		p.InsertTerm(coeffs[i], uint(i))
	}

	return p
}

// NewPolynomialFromTerms accumulates the terms in the given order through InsertTerm.
func NewPolynomialFromTerms(f Field, terms ...Term) *Polynomial {
	p := &Polynomial{f: f}
	for _, t := range terms {
		p.InsertTerm(t.Coeff, t.Exp)
	}

	return p
}

func makeConstantPoly(f Field, c float64) *Polynomial {
	return NewPolynomialFromTerms(f, Term{Coeff: c})
}

func cmpDescending(t Term, exp uint) int {
	switch {
	case t.Exp > exp:
		return -1
	case t.Exp < exp:
		return 1
	default:
		return 0
	}
}

// InsertTerm adds coeff*x^exp into p, keeping p canonical.
// It panics with ErrExponentOverflow if exp > MaxExp.
func (p *Polynomial) InsertTerm(coeff float64, exp uint) {
	if p.f == nil {
		p.f = Reals()
	}

	if exp > MaxExp {
		panic(ErrExponentOverflow)
	}

	if p.f.IsZero(coeff) {
		return
	}

	pos, found := slices.BinarySearchFunc(p.terms, exp, cmpDescending)
	if !found {
		p.terms = slices.Insert(p.terms, pos, Term{Coeff: coeff, Exp: exp})

		return
	}

	sum := p.f.Add(p.terms[pos].Coeff, coeff)
	if p.f.IsZero(sum) {
		p.terms = slices.Delete(p.terms, pos, pos+1)

		return
	}

	p.terms[pos].Coeff = sum
}

func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Degree returns the leading exponent, or -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	if p.IsZero() {
		return -1
	}

	return int(p.terms[0].Exp)
}

func (p *Polynomial) LeadCoeff() float64 {
	if p.IsZero() {
		return 0
	}

	return p.terms[0].Coeff
}

func (p *Polynomial) leadExp() uint {
	return p.terms[0].Exp
}

// Coeff returns the coefficient of x^exp (0 if absent).
func (p *Polynomial) Coeff(exp uint) float64 {
	if pos, found := slices.BinarySearchFunc(p.terms, exp, cmpDescending); found {
		return p.terms[pos].Coeff
	}

	return 0
}

// Len is the number of stored (non-zero) terms.
func (p *Polynomial) Len() int {
	return len(p.terms)
}

func (p *Polynomial) Field() Field {
	if p.f == nil {
		return Reals()
	}

	return p.f
}

// Equals compares term lists, coefficients within the field's epsilon.
func (p *Polynomial) Equals(q *Polynomial) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}

	for i := range p.terms {
		if p.terms[i].Exp != q.terms[i].Exp {
			return false
		}

		if !p.f.Equals(p.terms[i].Coeff, q.terms[i].Coeff) {
			return false
		}
	}

	return true
}

func (p *Polynomial) Copy() *Polynomial {
	return &Polynomial{f: p.f, terms: slices.Clone(p.terms)}
}

// Terms returns a copy of the terms, highest exponent first.
func (p *Polynomial) Terms() []Term {
	return slices.Clone(p.terms)
}

// ToSlice returns the dense coefficients from lowest to highest degree.
// The zero polynomial gives []float64{0}.
func (p *Polynomial) ToSlice() []float64 {
	if p.IsZero() {
		return []float64{0}
	}

	list := make([]float64, p.leadExp()+1)
	for _, t := range p.terms {
		list[t.Exp] = t.Coeff
	}

	return list
}

// isCanonical reports whether p satisfies the ordering and epsilon invariants.
func (p *Polynomial) isCanonical() bool {
	for i, t := range p.terms {
		if p.f.IsZero(t.Coeff) {
			return false
		}

		if i > 0 && p.terms[i-1].Exp <= t.Exp {
			return false
		}
	}

	return true
}
