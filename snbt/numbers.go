package snbt

import (
	"math/big"
	"strconv"
)

// numberLiteral is the parsed shape of a Number token (spec §4.3): an
// optional sign, an integer-or-decimal magnitude, an optional exponent,
// and an optional one-letter type suffix.
type numberLiteral struct {
	magnitude string // digits, an optional '.', and an optional exponent; sign stripped
	negative  bool
	hasDot    bool
	hasExp    bool
	suffix    byte // 0, or one of 'b' 's' 'l' 'f' 'd' (lowercased)
}

// scanNumberLiteral parses tok as a Number token in full; it returns
// ok=false if tok is not a well-formed Number (so the caller can fall
// back to the bool/string branches of the disambiguation rule).
func scanNumberLiteral(tok string) (numberLiteral, bool) {
	var lit numberLiteral
	i := 0
	n := len(tok)
	if i < n && (tok[i] == '+' || tok[i] == '-') {
		lit.negative = tok[i] == '-'
		i++
	}

	digitsStart := i
	for i < n && isDigit(tok[i]) {
		i++
	}
	intDigits := i - digitsStart
	if i < n && tok[i] == '.' {
		lit.hasDot = true
		i++
		fracStart := i
		for i < n && isDigit(tok[i]) {
			i++
		}
		if intDigits == 0 && i == fracStart {
			return lit, false // bare '.' with no digits on either side
		}
	} else if intDigits == 0 {
		return lit, false // no digits at all
	}
	lit.magnitude = tok[digitsStart:i]

	if i < n && (tok[i] == 'e' || tok[i] == 'E') {
		expStart := i
		i++
		if i < n && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		expDigitsStart := i
		for i < n && isDigit(tok[i]) {
			i++
		}
		if i == expDigitsStart {
			return lit, false // malformed exponent
		}
		lit.hasExp = true
		lit.magnitude = tok[digitsStart:i]
		_ = expStart
	}

	if i < n {
		switch tok[i] | 0x20 { // lowercase
		case 'b', 's', 'l', 'f', 'd':
			lit.suffix = tok[i] | 0x20
			i++
		}
	}

	if i != n {
		return lit, false // trailing garbage the suffix switch didn't consume
	}
	return lit, true
}

// asFloat reports whether lit should be read as a float (Float or
// Double), per the disambiguation rule: a magnitude with a decimal
// point, an exponent, or an explicit f/d suffix is a float; otherwise
// it's an integer candidate.
func (lit numberLiteral) asFloat() bool {
	return lit.hasDot || lit.hasExp || lit.suffix == 'f' || lit.suffix == 'd'
}

func (lit numberLiteral) floatValue() (float64, error) {
	s := lit.magnitude
	if lit.negative {
		s = "-" + s
	}
	return strconv.ParseFloat(s, 64)
}

// intWrapped parses lit's magnitude (known to contain only digits, no
// dot or exponent) into a two's-complement value of the given bit
// width, wrapping on overflow rather than failing (spec §4.3: "does not
// bounds-check magnitude ... caller must accept wrap"). math/big.Int
// handles arbitrarily long digit runs that would overflow int64 outright.
func (lit numberLiteral) intWrapped(bitWidth uint) int64 {
	mag := new(big.Int)
	mag.SetString(lit.magnitude, 10)
	if lit.negative {
		mag.Neg(mag)
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), bitWidth)
	wrapped := new(big.Int).Mod(mag, modulus) // Euclidean mod: result in [0, modulus)

	half := new(big.Int).Lsh(big.NewInt(1), bitWidth-1)
	if wrapped.Cmp(half) >= 0 {
		wrapped.Sub(wrapped, modulus)
	}
	return wrapped.Int64()
}
