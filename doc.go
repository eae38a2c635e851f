/*
Package rational implements immutable exact rational numbers over
a caller-chosen signed integer type, together with a flexible parser
that accepts fractions, decimals and scientific notation.

# Representation

[Rational] is a generic struct with two fields:

  - Numerator: a signed integer of type T carrying the sign of the number.
  - Denominator: a positive integer of type T.

A valid rational is always in lowest terms, so the same numeric value
has exactly one representation. For example, "2/4", "0.5" and "5e-1" all
produce 1/2.

The zero value of [Rational] is 0/1.

# Parsing

[Parse] and [ParseFlexible] accept a single trimmed token in one of
three forms:

	| Form       | Example | Result    |
	| ---------- | ------- | --------- |
	| Fraction   | -35/4   | -35/4     |
	| Decimal    | 3.1415  | 6283/2000 |
	| Scientific | -47e-2  | -47/100   |

The value is computed exactly: the digits of the significand become the
numerator, and the exponent minus the number of fractional digits becomes
a power of ten applied either to the numerator or to the denominator.
Trailing zeros of the fractional part are ignored.
No floating-point intermediates are used.

[ParseFlexible] returns the numerator and denominator before reduction,
while [Parse] passes them to [New], which reduces them to lowest terms.

# Constraints

The range of a rational is determined by T.
Every step of parsing and arithmetic uses checked operations, so values
that cannot be represented by T produce an error instead of wrapping
around. For example, for int8 "127" is 127/1, but "200" and "1e3" are
overflows, and "0.001" is an overflow because its denominator 1000 does
not fit.

Arithmetic methods first try checked arithmetic over T.
If an intermediate value overflows, the operation is repeated with [big.Rat]
and only fails if the exact result does not fit into T.

# Errors

All functions are panic-free and pure, except the Must variants.
Parsing errors are of type [*ParseError], which carries one of the following
kinds:

  - [MalformedLiteral]: empty input, duplicated '/', '.' or exponent marker,
    or missing digits.
  - [InvalidDigit]: a character other than '0'-'9' in a digit run.
  - [ZeroDenominator]: a fraction with a zero denominator.
  - [Overflow]: a value that cannot be represented by T.

Use [errors.Is] with [ErrMalformedLiteral], [ErrInvalidDigit],
[ErrZeroDenominator] or [ErrOverflow] to test the kind of any error returned
by this package.

[big.Rat]: https://pkg.go.dev/math/big#Rat
*/
package rational
