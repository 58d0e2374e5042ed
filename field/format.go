package field

import (
	"strconv"
	"strings"
)

// String renders p highest exponent first, e.g. "3x^2-2x+1". The zero polynomial is "0".
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	bldr := strings.Builder{}

	for i, t := range p.terms {
		if i > 0 && t.Coeff > 0 {
			bldr.WriteByte('+')
		}

		// shortest decimal that parses back to the same float64, never in exponent form.
		bldr.WriteString(strconv.FormatFloat(t.Coeff, 'f', -1, 64))

		switch t.Exp {
		case 0:
		case 1:
			bldr.WriteByte('x')
		default:
			bldr.WriteString("x^")
			bldr.WriteString(strconv.FormatUint(uint64(t.Exp), 10))
		}
	}

	return bldr.String()
}
