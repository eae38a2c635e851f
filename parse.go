package rational

import (
	"strings"
	"unicode/utf8"
)

// maxExponent is the largest absolute value of an exponent accepted
// by [ParseFlexible].
const maxExponent = 999_999_999

// form is the grammar a literal is classified into.
type form uint8

const (
	formDecimal form = iota
	formScientific
	formFraction
)

// ParseFlexible converts a literal to a numerator and a denominator of type T.
// The input string must be in one of the following formats:
//
//	3/4
//	-35/4
//	1.25
//	-.5
//	3.
//	1.2e-3
//	1E5
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer        ::= [sign] digits
//	fraction       ::= integer '/' integer
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= fraction | [sign] significand [exponent]
//
// The value is computed exactly, without floating-point intermediates.
// The returned denominator is always positive, but the pair is not necessarily
// in lowest terms; use [Parse] to obtain a reduced [Rational].
// Trailing zeros of the fractional part are dropped, so "1.50" produces 15/10
// and "1.0000000000" fits into int32. Digits of the integer part are kept,
// so "200e-1" is an overflow for int8 even though its value is 20.
//
// ParseFlexible returns a [*ParseError]:
//   - with kind [MalformedLiteral] if the string is empty, has no digits where
//     they are required, or has a duplicated '/', '.' or exponent marker.
//   - with kind [InvalidDigit] if a digit run contains any other character.
//   - with kind [ZeroDenominator] if a fraction has a zero denominator.
//   - with kind [Overflow] if the numerator, the denominator, or any
//     intermediate value does not fit into T.
func ParseFlexible[T Integer](s string) (num, den T, err error) {
	f, err := classify(s)
	if err != nil {
		return 0, 0, err
	}
	if f == formFraction {
		return parseFraction[T](s)
	}
	return parseDecimal[T](s, f == formScientific)
}

// classify inspects s once and decides which grammar applies.
// Digit content is not validated here.
func classify(s string) (form, error) {
	if s == "" {
		return 0, newParseError(MalformedLiteral, s, "empty literal")
	}
	var slashes, markers int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/':
			slashes++
		case 'e', 'E':
			markers++
		}
	}
	switch {
	case slashes > 1:
		return 0, newParseError(MalformedLiteral, s, "more than one '/'")
	case slashes == 1:
		return formFraction, nil
	case markers > 1:
		return 0, newParseError(MalformedLiteral, s, "more than one exponent marker")
	case markers == 1 && s[0] != 'e' && s[0] != 'E':
		return formScientific, nil
	}
	return formDecimal, nil
}

// parseFraction handles "integer/integer" literals.
func parseFraction[T Integer](s string) (num, den T, err error) {
	numstr, denstr, _ := strings.Cut(s, "/")
	num, err = parseInteger[T](s, numstr, "numerator")
	if err != nil {
		return 0, 0, err
	}
	den, err = parseInteger[T](s, denstr, "denominator")
	if err != nil {
		return 0, 0, err
	}
	if den == 0 {
		return 0, 0, newParseError(ZeroDenominator, s, "")
	}
	// Both values are in [-max, max], so negation is safe.
	if den < 0 {
		num, den = -num, -den
	}
	return num, den, nil
}

// parseInteger parses one side of a fraction.
func parseInteger[T Integer](lit, side, name string) (T, error) {
	neg, digits := cutSign(side)
	if digits == "" {
		return 0, newParseError(MalformedLiteral, lit, "no digits in %v", name)
	}
	if err := checkDigits(lit, digits); err != nil {
		return 0, err
	}
	var (
		z  T
		ok bool
	)
	for i := 0; i < len(digits); i++ {
		z, ok = fsa(z, digits[i]-'0')
		if !ok {
			return 0, newParseError(Overflow, lit, "%v does not fit into %T", name, z)
		}
	}
	if neg {
		z = -z
	}
	return z, nil
}

// parseDecimal handles decimal and, if scientific is true,
// scientific literals.
func parseDecimal[T Integer](s string, scientific bool) (num, den T, err error) {
	mant, exp := s, ""
	if scientific {
		pos := strings.IndexAny(s, "eE")
		mant, exp = s[:pos], s[pos+1:]
	}

	// Structure
	if strings.Count(s, ".") > 1 {
		return 0, 0, newParseError(MalformedLiteral, s, "more than one decimal point")
	}
	if strings.Contains(exp, ".") {
		return 0, 0, newParseError(MalformedLiteral, s, "decimal point in exponent")
	}
	neg, mant := cutSign(mant)
	whole, frac, _ := strings.Cut(mant, ".")
	if whole == "" && frac == "" {
		return 0, 0, newParseError(MalformedLiteral, s, "no coefficient")
	}
	eneg, edigits := cutSign(exp)
	if scientific && edigits == "" {
		return 0, 0, newParseError(MalformedLiteral, s, "no exponent")
	}

	// Digits
	for _, d := range []string{whole, frac, edigits} {
		if err := checkDigits(s, d); err != nil {
			return 0, 0, err
		}
	}

	// Exponent
	var scale int
	for i := 0; i < len(edigits); i++ {
		scale = scale*10 + int(edigits[i]-'0')
		if scale > maxExponent {
			return 0, 0, newParseError(Overflow, s, "exponent out of range")
		}
	}
	if eneg {
		scale = -scale
	}

	// Trailing zeros of the fraction do not change the value
	frac = strings.TrimRight(frac, "0")
	scale -= len(frac)

	return build[T](s, neg, whole+frac, scale)
}

// build computes ±digits * 10^scale as a numerator and a denominator
// using checked arithmetic only.
func build[T Integer](lit string, neg bool, digits string, scale int) (num, den T, err error) {
	var ok bool

	// Coefficient
	for i := 0; i < len(digits); i++ {
		num, ok = fsa(num, digits[i]-'0')
		if !ok {
			return 0, 0, newParseError(Overflow, lit, "numerator does not fit into %T", num)
		}
	}

	// Scaling
	den = 1
	switch {
	case scale > 0:
		num, ok = lsh(num, scale)
		if !ok {
			return 0, 0, newParseError(Overflow, lit, "numerator does not fit into %T", num)
		}
	case scale < 0:
		den, ok = pow10[T](-scale)
		if !ok {
			return 0, 0, newParseError(Overflow, lit, "denominator does not fit into %T", den)
		}
	}

	if neg {
		num = -num
	}
	return num, den, nil
}

// cutSign removes an optional leading sign from s.
func cutSign(s string) (neg bool, rest string) {
	if s == "" {
		return false, s
	}
	switch s[0] {
	case '-':
		return true, s[1:]
	case '+':
		return false, s[1:]
	}
	return false, s
}

// checkDigits verifies that digits contains only ASCII decimal digits.
func checkDigits(lit, digits string) error {
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			r, _ := utf8.DecodeRuneInString(digits[i:])
			return newParseError(InvalidDigit, lit, "invalid character %q", r)
		}
	}
	return nil
}
