package realpoly

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/jonathanmweiss/go-realpoly/field"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		in   string
		want []field.Term
	}{
		{"x", []field.Term{{Coeff: 1, Exp: 1}}},
		{"-x", []field.Term{{Coeff: -1, Exp: 1}}},
		{"+x^3-x", []field.Term{{Coeff: 1, Exp: 3}, {Coeff: -1, Exp: 1}}},
		{"3.5x^2", []field.Term{{Coeff: 3.5, Exp: 2}}},
		{".5x", []field.Term{{Coeff: 0.5, Exp: 1}}},
		{"7", []field.Term{{Coeff: 7, Exp: 0}}},
		{"-2.25", []field.Term{{Coeff: -2.25, Exp: 0}}},
		{"x^2 + x^2", []field.Term{{Coeff: 2, Exp: 2}}},
		{" 1 + 2 x ^ 3\t", []field.Term{{Coeff: 2, Exp: 3}, {Coeff: 1, Exp: 0}}},
		{"1 - x + x^10", []field.Term{{Coeff: 1, Exp: 10}, {Coeff: -1, Exp: 1}, {Coeff: 1, Exp: 0}}},
		{"-4x^0", []field.Term{{Coeff: -4, Exp: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			a.NoError(err)
			a.Equal(tt.want, p.Terms())
		})
	}

	t.Run("zeroResults", func(t *testing.T) {
		for _, in := range []string{"", "   ", "x - x", "0x^5 + 0", "0.0000000001x"} {
			p, err := Parse(in)
			a.NoError(err)
			a.True(p.IsZero(), in)
			a.Equal("0", Format(p))
		}
	})
}

func TestParseLenient(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		in   string
		want string
	}{
		{"3x^2 * 2", "3x^2+2"},
		{"3x^", "3x"},
		{"3x^2+", "3x^2"},
		{"2x3", "2x+3"},
		{"y + 1", "1"},
		{"abc", "0"},
		{".", "0"},
		{"x^99999999999999999999999 + 1", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			a.NoError(err)
			a.Equal(tt.want, Format(p))
		})
	}
}

func TestParseExponentBound(t *testing.T) {
	a := assert.New(t)

	maxExp := strconv.Itoa(math.MaxInt)
	overflow := strconv.FormatUint(uint64(math.MaxInt)+1, 10)

	t.Run("maxAccepted", func(t *testing.T) {
		p, err := NewParser(field.Reals(), true, zerolog.Nop()).Parse("x^" + maxExp)
		a.NoError(err)
		a.Equal(math.MaxInt, p.Degree())
	})

	t.Run("lenientSkips", func(t *testing.T) {
		p, err := Parse("x^" + overflow + " + 2x")
		a.NoError(err)
		a.Equal("2x", Format(p))
		a.Equal(1, p.Degree())
	})

	t.Run("strictRejects", func(t *testing.T) {
		p, err := NewParser(field.Reals(), true, zerolog.Nop()).Parse("x^" + overflow)
		a.Nil(p)
		a.ErrorIs(err, ErrParse)
		a.ErrorIs(err, strconv.ErrRange)

		var perr *ParseError
		if a.True(errors.As(err, &perr)) {
			a.Equal(2, perr.Pos)
			a.Equal(overflow, perr.Fragment)
			a.Equal(reasonExponent, perr.Reason)
		}
	})
}

func TestParseStrict(t *testing.T) {
	a := assert.New(t)

	ps := NewParser(field.Reals(), true, zerolog.Nop())

	t.Run("accepts", func(t *testing.T) {
		p, err := ps.Parse("3x^2 - 0.5x + 7")
		a.NoError(err)
		a.Equal("3x^2-0.5x+7", Format(p))
	})

	tests := []struct {
		in       string
		pos      int
		fragment string
		reason   string
	}{
		{"3x^2 * 2", 4, "*", reasonUnexpected},
		{"3x^", 2, "^", reasonUnexpected},
		{"3x^2+", 4, "+", reasonSignOnly},
		{"2x3", 2, "3", reasonMissingSign},
		{"y+1", 0, "y", reasonUnexpected},
		{"x+.", 2, ".", reasonCoefficient},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ps.Parse(tt.in)
			a.Nil(p)
			a.ErrorIs(err, ErrParse)

			var perr *ParseError
			if a.True(errors.As(err, &perr)) {
				a.Equal(tt.pos, perr.Pos)
				a.Equal(tt.fragment, perr.Fragment)
				a.Equal(tt.reason, perr.Reason)
			}
		})
	}

	t.Run("numericCause", func(t *testing.T) {
		_, err := ps.Parse("x^99999999999999999999999")

		var numErr *strconv.NumError
		a.True(errors.As(err, &numErr))
		a.ErrorIs(err, strconv.ErrRange)
		a.ErrorIs(err, ErrParse)
		a.Contains(err.Error(), reasonExponent)
	})
}

func FuzzParse(f *testing.F) {
	for _, tc := range []string{"3x^2 + 2x", "-x+1", "4.25x^3-.5", "x^", "++x", "1..2x"} {
		f.Add(tc)
	}

	lenient := NewParser(field.Reals(), false, zerolog.Nop())
	strict := NewParser(field.Reals(), true, zerolog.Nop())

	f.Fuzz(func(t *testing.T, in string) {
		p, err := lenient.Parse(in)
		if err != nil {
			t.Fatalf("lenient parse of %q failed: %v", in, err)
		}

		terms := p.Terms()
		for i := 1; i < len(terms); i++ {
			if terms[i-1].Exp <= terms[i].Exp {
				t.Fatalf("terms of %q out of order: %v", in, terms)
			}
		}

		sp, err := strict.Parse(in)
		if err != nil {
			if !errors.Is(err, ErrParse) {
				t.Fatalf("strict parse of %q returned a foreign error: %v", in, err)
			}

			return
		}

		if !sp.Equals(p) {
			t.Fatalf("strict %v and lenient %v disagree on %q", sp, p, in)
		}
	})
}
