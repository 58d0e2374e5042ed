package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	f := Reals()

	tests := []struct {
		name  string
		terms []Term
		want  string
	}{
		{"zero", nil, "0"},
		{"constant", []Term{{5, 0}}, "5"},
		{"negativeConstant", []Term{{-5, 0}}, "-5"},
		{"linear", []Term{{2, 1}}, "2x"},
		{"unitCoefficient", []Term{{1, 1}}, "1x"},
		{"mixedSigns", []Term{{3, 2}, {-2, 1}, {-1, 0}}, "3x^2-2x-1"},
		{"positiveTail", []Term{{3, 2}, {2, 1}}, "3x^2+2x"},
		{"decimals", []Term{{3.5, 10}, {0.25, 0}}, "3.5x^10+0.25"},
		{"leadingNegative", []Term{{-1, 3}, {4, 0}}, "-1x^3+4"},
		{"noExponentNotation", []Term{{1e21, 1}, {1.5e-7, 0}}, "1000000000000000000000x+0.00000015"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.Equal(tt.want, NewPolynomialFromTerms(f, tt.terms...).String())
		})
	}
}
