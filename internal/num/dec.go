package num

// Dec represents an arbitrary-precision decimal as Coef * 10^-Scale.
// Parsed values are normalized: Coef has no leading zeros and no trailing
// zeros inside the fractional part, so equal values share one representation.
type Dec struct {
	Sign  int8
	Coef  []byte
	Scale uint32
}

// ParseDec parses an xs:decimal lexical value.
func ParseDec(b []byte) (Dec, *ParseError) {
	negative, start, err := scanSign(b)
	if err != nil {
		return Dec{}, err
	}
	dot := -1
	for j := start; j < len(b); j++ {
		switch c := b[j]; {
		case isDigit(c):
		case c == '.' && dot < 0:
			dot = j
		case c == '.':
			return Dec{}, fail(ParseMultipleDots, j)
		case c == '+' || c == '-':
			return Dec{}, fail(ParseMultipleSigns, j)
		default:
			return Dec{}, fail(ParseBadChar, j)
		}
	}
	whole, frac := b[start:], []byte(nil)
	if dot >= 0 {
		whole, frac = b[start:dot], b[dot+1:]
		if len(whole) == 0 && len(frac) == 0 {
			return Dec{}, fail(ParseNoDigits, dot)
		}
	}
	frac = trimTrailingZeros(frac)
	coef := trimLeadingZeros(append(append(make([]byte, 0, len(whole)+len(frac)), whole...), frac...))
	if len(coef) == 0 {
		return Dec{Coef: zeroDigits}, nil
	}
	d := Dec{Sign: 1, Coef: coef, Scale: uint32(len(frac))}
	if negative {
		d.Sign = -1
	}
	return d, nil
}

// Equal reports whether two normalized decimals hold the same value.
func (d Dec) Equal(o Dec) bool {
	if d.Sign == 0 || o.Sign == 0 {
		return d.Sign == o.Sign
	}
	return d.Sign == o.Sign && d.Scale == o.Scale && string(d.Coef) == string(o.Coef)
}

// RenderCanonical appends the decimal without trailing fractional zeros.
// The decimal point is omitted when no fractional digits remain.
func (d Dec) RenderCanonical(dst []byte) []byte {
	if d.Sign == 0 {
		return append(dst, '0')
	}
	if d.Sign < 0 {
		dst = append(dst, '-')
	}
	coef := d.Coef
	scale := int(d.Scale)
	frac := []byte(nil)
	intPart := coef
	if scale > 0 {
		if scale >= len(coef) {
			intPart = nil
			frac = make([]byte, 0, scale)
			for range scale - len(coef) {
				frac = append(frac, '0')
			}
			frac = append(frac, coef...)
		} else {
			intPart = coef[:len(coef)-scale]
			frac = coef[len(coef)-scale:]
		}
	}
	frac = trimTrailingZeros(frac)
	if len(intPart) == 0 {
		dst = append(dst, '0')
	} else {
		dst = append(dst, intPart...)
	}
	if len(frac) > 0 {
		dst = append(dst, '.')
		dst = append(dst, frac...)
	}
	return dst
}

// String returns the canonical lexical form.
func (d Dec) String() string {
	return string(d.RenderCanonical(nil))
}
