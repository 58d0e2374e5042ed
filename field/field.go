package field

import (
	"errors"
	"math"
)

// DefaultEpsilon is the magnitude below which a coefficient is treated as zero.
const DefaultEpsilon = 1e-9

type Field interface {
	Equals(a, b float64) bool
	IsZero(a float64) bool
	Add(a, b float64) float64
	Sub(a, b float64) float64
	Mul(a, b float64) float64
	Div(a, b float64) float64
	Pow(base float64, exp uint) float64

	Neg(a float64) float64
	Inverse(a float64) float64
	// Reduce snaps near-zero values to exactly zero.
	Reduce(a float64) float64

	Epsilon() float64
}

type RealField struct {
	eps float64
}

var (
	errNonPositiveEpsilon = errors.New("epsilon must be a positive finite number")
)

/*
NewRealField returns the field of float64 coefficients where values whose
magnitude is below eps compare equal to zero.
*/
func NewRealField(eps float64) (Field, error) {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return nil, errNonPositiveEpsilon
	}

	return &RealField{eps: eps}, nil
}

// Reals is the field with DefaultEpsilon.
func Reals() Field {
	return &RealField{eps: DefaultEpsilon}
}

func (f *RealField) Epsilon() float64 {
	return f.eps
}

func (f *RealField) IsZero(a float64) bool {
	return math.Abs(a) < f.eps
}

func (f *RealField) Equals(a, b float64) bool {
	return f.IsZero(a - b)
}

func (f *RealField) Reduce(a float64) float64 {
	if f.IsZero(a) {
		return 0
	}

	return a
}

func (f *RealField) Add(a, b float64) float64 {
	return a + b
}

func (f *RealField) Sub(a, b float64) float64 {
	return a - b
}

func (f *RealField) Mul(a, b float64) float64 {
	return a * b
}

// Div returns a / b. Callers check b against IsZero first.
func (f *RealField) Div(a, b float64) float64 {
	return a / b
}

func (f *RealField) Pow(base float64, exp uint) float64 {
	return math.Pow(base, float64(exp))
}

func (f *RealField) Inverse(e float64) float64 {
	if f.IsZero(e) {
		panic("zero has no inverse")
	}

	return 1 / e
}

func (f *RealField) Neg(e float64) float64 {
	return -e
}
