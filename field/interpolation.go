package field

import "errors"

type Interpolator struct {
	pr PolyRing
}

func NewInterpolator(pr PolyRing) *Interpolator {
	return &Interpolator{pr: pr}
}

var (
	errPointsSizeMismatch = errors.New("points size mismatch")
	errNonUniqueXs        = errors.New("non-unique x values")
	errNoPoints           = errors.New("no points to interpolate")
)

// Interpolation code follows the Lagrange interpolation method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// It is O(n^2) in total:
// 1. Create m(x) = \prod_{0\le i \le n} (x - x_i)
// 2. For each i, q_i(x) = m(x) / (x - x_i), by synthetic division.
// 3. l_i = q_i / q_i(x_i).
// 4. Sum all l_i * y_i.
func (intr *Interpolator) Interpolate(xs, ys []float64) (*Polynomial, error) {
	if err := validateInterpolationPoints(intr.pr, xs, ys); err != nil {
		return nil, err
	}

	fld := intr.pr.GetField()
	m := PolyProductMonicNegRoots(fld, xs)
	dense := m.ToSlice()

	result := &Polynomial{f: fld}

	for i, x := range xs {
		qi := intr.mDivMi(dense, x)
		s := intr.pr.Evaluate(qi, x)

		// y_i / \prod_{j\ne i} (x_i - x_j)
		scale := fld.Div(ys[i], s)
		for _, t := range qi.terms {
			result.InsertTerm(fld.Mul(t.Coeff, scale), t.Exp)
		}
	}

	return result, nil
}

// PolyProduct multiplies a slice of polynomials.
func PolyProduct(pr PolyRing, polys []*Polynomial) *Polynomial {
	m := makeConstantPoly(pr.GetField(), 1)
	for _, mi := range polys {
		m = pr.MulPoly(m, mi)
	}

	return m
}

// PolyProductMonicNegRoots computes \prod (x - r_i).
func PolyProductMonicNegRoots(f Field, roots []float64) *Polynomial {
	n := len(roots)
	if n == 0 {
		return makeConstantPoly(f, 1)
	}

	coeffs := make([]float64, n+1)
	coeffs[0] = 1

	deg := 0
	for _, r := range roots {
		neg := f.Neg(r)
		coeffs[deg+1] = 0
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = f.Add(coeffs[j+1], coeffs[j])
			// new[j]   = old[j] * (-r)
			coeffs[j] = f.Mul(coeffs[j], neg)
		}
		deg++
	}

	return NewPolynomial(f, coeffs)
}

/*
mDivMi divides m (dense, lowest degree first) by (x - xi). This is quicker than
the long division method since the divisor is monic of degree 1 and there
is no remainder.
*/
func (intr *Interpolator) mDivMi(m []float64, xi float64) *Polynomial {
	fld := intr.pr.GetField()
	qinner := make([]float64, len(m)-1)

	carry := 0.0
	for i := len(m) - 1; i > 0; i-- {
		carry = fld.Add(m[i], fld.Mul(carry, xi))
		qinner[i-1] = carry
	}

	return NewPolynomial(fld, qinner)
}

func validateInterpolationPoints(pr PolyRing, xs []float64, ys []float64) error {
	if len(xs) != len(ys) {
		return errPointsSizeMismatch
	}

	if len(xs) == 0 {
		return errNoPoints
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if pr.Equals(xs[i], xs[j]) {
				return errNonUniqueXs
			}
		}
	}

	return nil
}
