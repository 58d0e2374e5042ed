package realpoly

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathanmweiss/go-realpoly/field"
	"github.com/rs/zerolog"
)

// termPattern matches [sign][coefficient][x[^exponent]]. Every group is
// optional, so the pattern also matches the empty string; those matches are
// skipped.
var termPattern = regexp.MustCompile(`([+-]?)(\d*\.?\d*)(x(?:\^(\d+))?)?`)

const (
	reasonUnexpected  = "unexpected characters"
	reasonSignOnly    = "sign without coefficient or x"
	reasonCoefficient = "invalid coefficient"
	reasonExponent    = "invalid exponent"
	reasonMissingSign = "term does not start with + or -"
)

/*
Parser turns expressions such as "3x^2 - x + 0.5" into polynomials.

The grammar is a concatenation of signed terms [sign][coefficient][x[^n]]:
a bare x is 1x^1, -x is -1x^1 and a number without x is a constant.
Whitespace is ignored. There are no parentheses, no '*' and no variable other than x.

A lenient Parser skips fragments it cannot read, logging each one at warn level,
and returns the terms it did recognize. A strict Parser returns a *ParseError
for the first such fragment.
*/
type Parser struct {
	f      field.Field
	strict bool
	logger zerolog.Logger
}

func NewParser(f field.Field, strict bool, logger zerolog.Logger) *Parser {
	return &Parser{f: f, strict: strict, logger: logger}
}

func (ps *Parser) Strict() bool { return ps.strict }

func (ps *Parser) Parse(text string) (*field.Polynomial, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, text)

	p := field.NewPolynomial(ps.f, nil)

	covered := 0
	seen := 0

	for _, m := range termPattern.FindAllStringSubmatchIndex(cleaned, -1) {
		start, end := m[0], m[1]

		if start > covered {
			if err := ps.reject(&ParseError{Pos: covered, Fragment: cleaned[covered:start], Reason: reasonUnexpected}); err != nil {
				return nil, err
			}

			covered = start
		}

		if start == end {
			continue
		}

		covered = end

		coeff, exp, perr := readTerm(cleaned, m)
		if perr != nil {
			if err := ps.reject(perr); err != nil {
				return nil, err
			}

			continue
		}

		if seen > 0 && m[3] == m[2] {
			if err := ps.reject(&ParseError{Pos: start, Fragment: cleaned[start:end], Reason: reasonMissingSign}); err != nil {
				return nil, err
			}
		}

		seen++
		p.InsertTerm(coeff, exp)
	}

	if covered < len(cleaned) {
		if err := ps.reject(&ParseError{Pos: covered, Fragment: cleaned[covered:], Reason: reasonUnexpected}); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// reject returns perr in strict mode; in lenient mode it logs and returns nil.
func (ps *Parser) reject(perr *ParseError) error {
	if ps.strict {
		return perr
	}

	ps.logger.Warn().
		Int("pos", perr.Pos).
		Str("fragment", perr.Fragment).
		Str("reason", perr.Reason).
		AnErr("cause", perr.Err).
		Msg("skipping unparsable fragment")

	return nil
}

// readTerm decodes one non-empty termPattern match given by its submatch indices.
func readTerm(s string, m []int) (float64, uint, *ParseError) {
	start, end := m[0], m[1]
	sign := s[m[2]:m[3]]
	digits := s[m[4]:m[5]]
	hasX := m[6] >= 0

	if digits == "" && !hasX {
		return 0, 0, &ParseError{Pos: start, Fragment: s[start:end], Reason: reasonSignOnly}
	}

	coeff := 1.0
	if digits != "" {
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return 0, 0, &ParseError{Pos: m[4], Fragment: digits, Reason: reasonCoefficient, Err: err}
		}

		coeff = v
	}

	if sign == "-" {
		coeff = -coeff
	}

	if !hasX {
		return coeff, 0, nil
	}

	if m[8] < 0 {
		return coeff, 1, nil
	}

	expDigits := s[m[8]:m[9]]

	// IntSize-1 bits caps the exponent at field.MaxExp.
	exp, err := strconv.ParseUint(expDigits, 10, strconv.IntSize-1)
	if err != nil {
		return 0, 0, &ParseError{Pos: m[8], Fragment: expDigits, Reason: reasonExponent, Err: err}
	}

	return coeff, uint(exp), nil
}
