package field

import (
	"errors"

	"github.com/rs/zerolog"
)

type PolyRing interface {
	Field
	GetField() Field
	SetLogger(l zerolog.Logger)

	Evaluate(a *Polynomial, x float64) float64
	// compute a * scalar
	MulScalar(a *Polynomial, scalar float64) *Polynomial

	// compute a * b; panics with ErrExponentOverflow if a product exponent exceeds MaxExp.
	MulPoly(a, b *Polynomial) *Polynomial
	// compute a + b
	AddPoly(a, b *Polynomial) *Polynomial
	// compute a - b
	SubPoly(a, b *Polynomial) *Polynomial

	Derivative(a *Polynomial) *Polynomial
	// Integrate returns the antiderivative with a zero constant term.
	// It panics with ErrExponentOverflow if a has a term at MaxExp.
	Integrate(a *Polynomial) *Polynomial

	// Creates quotient and remainder
	LongDiv(a, b *Polynomial) (q *Polynomial, r *Polynomial, err error) // returns quotient, remainder

	// Extended Euclidean algorithm.
	PartialExtendedEuclidean(a, b *Polynomial, stopDegree int) (gcd, x, y *Polynomial)
	GCD(a, b *Polynomial) *Polynomial
}

var ErrDivisionByZero = errors.New("division by the zero polynomial")

// SparsePolyRing implements PolyRing over canonical term lists.
type SparsePolyRing struct {
	Field
	logger zerolog.Logger
}

// NewSparsePolyRing constructs a ring over the provided coefficient field.
func NewSparsePolyRing(f Field) PolyRing {
	return &SparsePolyRing{Field: f, logger: zerolog.Nop()}
}

func (r *SparsePolyRing) GetField() Field { return r.Field }

func (r *SparsePolyRing) SetLogger(l zerolog.Logger) { r.logger = l }

func (r *SparsePolyRing) newPoly() *Polynomial {
	return &Polynomial{f: r.Field}
}

// ---------- Poly ops ----------
func (r *SparsePolyRing) Evaluate(a *Polynomial, x float64) float64 {
	result := 0.0
	for _, t := range a.terms {
		result = r.Add(result, r.Mul(t.Coeff, r.Pow(x, t.Exp)))
	}

	return result
}

func (r *SparsePolyRing) MulScalar(a *Polynomial, scalar float64) *Polynomial {
	c := r.newPoly()
	for _, t := range a.terms {
		c.InsertTerm(r.Mul(t.Coeff, scalar), t.Exp)
	}

	return c
}

func (r *SparsePolyRing) AddPoly(a, b *Polynomial) *Polynomial {
	return r.merge(a, b, false)
}

func (r *SparsePolyRing) SubPoly(a, b *Polynomial) *Polynomial {
	return r.merge(a, b, true)
}

// merge walks both term lists from the highest exponent down.
func (r *SparsePolyRing) merge(a, b *Polynomial, subtract bool) *Polynomial {
	c := r.newPoly()

	alen := len(a.terms)
	blen := len(b.terms)
	i, j := 0, 0

	for i < alen || j < blen {
		switch {
		case j >= blen || (i < alen && a.terms[i].Exp > b.terms[j].Exp):
			c.InsertTerm(a.terms[i].Coeff, a.terms[i].Exp)
			i++
		case i >= alen || b.terms[j].Exp > a.terms[i].Exp:
			bv := b.terms[j].Coeff
			if subtract {
				bv = r.Neg(bv)
			}

			c.InsertTerm(bv, b.terms[j].Exp)
			j++
		default:
			var v float64
			if subtract {
				v = r.Sub(a.terms[i].Coeff, b.terms[j].Coeff)
			} else {
				v = r.Add(a.terms[i].Coeff, b.terms[j].Coeff)
			}

			c.InsertTerm(v, a.terms[i].Exp)
			i++
			j++
		}
	}

	return c
}

func (r *SparsePolyRing) MulPoly(a, b *Polynomial) *Polynomial {
	c := r.newPoly()

	// Schoolbook distribution: O(n*m).
	// Exponents are at most MaxExp, so ta.Exp+tb.Exp cannot wrap a uint.
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			c.InsertTerm(r.Mul(ta.Coeff, tb.Coeff), ta.Exp+tb.Exp)
		}
	}

	return c
}

func (r *SparsePolyRing) Derivative(a *Polynomial) *Polynomial {
	c := r.newPoly()
	for _, t := range a.terms {
		if t.Exp == 0 {
			continue
		}

		c.InsertTerm(r.Mul(t.Coeff, float64(t.Exp)), t.Exp-1)
	}

	return c
}

func (r *SparsePolyRing) Integrate(a *Polynomial) *Polynomial {
	c := r.newPoly()
	for _, t := range a.terms {
		c.InsertTerm(r.Div(t.Coeff, float64(t.Exp+1)), t.Exp+1)
	}

	return c
}

// LongDiv returns q, rem such that a = q*b + rem, with rem zero or of lower degree than b.
func (r *SparsePolyRing) LongDiv(a, b *Polynomial) (q *Polynomial, rem *Polynomial, err error) {
	if b.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	divLead, divExp := b.LeadCoeff(), b.leadExp()

	rem = &Polynomial{f: r.Field, terms: a.Terms()}
	q = r.newPoly()

	steps := 0
	for !rem.IsZero() && rem.leadExp() >= divExp {
		lead := rem.leadExp()

		t := NewPolynomialFromTerms(r.Field, Term{
			Coeff: r.Div(rem.LeadCoeff(), divLead),
			Exp:   lead - divExp,
		})

		q = r.AddPoly(q, t)
		rem = r.SubPoly(rem, r.MulPoly(t, b))

		// t*b cancels the leading term exactly; anything left there is rounding.
		if !rem.IsZero() && rem.leadExp() == lead {
			r.logger.Warn().
				Uint("exp", lead).
				Float64("residue", rem.LeadCoeff()).
				Msg("dropping rounding residue from remainder lead")

			rem.terms = rem.terms[1:]
		}

		steps++
	}

	r.logger.Debug().
		Int("dividendDegree", a.Degree()).
		Int("divisorDegree", b.Degree()).
		Int("steps", steps).
		Msg("long division done")

	return q, rem, nil
}

// returns r= gcd(a,b), x, y such that ax + by = r.
// where r.Degree() < stopDegree.
func (r *SparsePolyRing) PartialExtendedEuclidean(a, b *Polynomial, stopDegree int) (gcd, x, y *Polynomial) {
	// Work on local copies ensuring inputs aren't mutated.
	A := a.Copy()
	B := b.Copy()

	// Invariants:
	//   A = x0*a_orig + y0*b_orig
	//   B = x1*a_orig + y1*b_orig
	x0 := makeConstantPoly(r.Field, 1)
	x1 := r.newPoly()
	y0 := r.newPoly()
	y1 := makeConstantPoly(r.Field, 1)

	for A.Degree() >= stopDegree {
		// If B == 0, can't divide further.
		if B.IsZero() {
			break
		}

		// A = q*B + r
		q, rrem, err := r.LongDiv(A, B)
		if err != nil {
			break
		}

		A, B = B, rrem // gcd(A, B) = gcd(B, rrem)

		// following Bézout's identity:
		// (x0, x1) = (x1, x0 - q*x1)
		x0, x1 = x1, r.SubPoly(x0, r.MulPoly(q, x1))
		// (y0, y1) = (y1, y0 - q*y1)
		y0, y1 = y1, r.SubPoly(y0, r.MulPoly(q, y1))
	}

	return A, x0, y0
}

// GCD returns the monic greatest common divisor; zero when both inputs are zero.
func (r *SparsePolyRing) GCD(a, b *Polynomial) *Polynomial {
	var g *Polynomial
	if a.IsZero() {
		g = b
	} else {
		g, _, _ = r.PartialExtendedEuclidean(a, b, 0)
	}

	if g.IsZero() {
		return r.newPoly()
	}

	return r.MulScalar(g, r.Inverse(g.LeadCoeff()))
}
