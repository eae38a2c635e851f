package rational

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strconv"
)

// Rational type is a representation of an exact rational number
// num/den, where num and den are of a signed integer type T.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A valid rational is always in lowest terms and its denominator is positive,
// so two valid rationals can be compared using the == and != operators.
// Internally, the denominator is biased by 1, which makes the zero value
// equal to 0/1.
type Rational[T Integer] struct {
	num T // the numerator, carries the sign
	dm1 T // the denominator minus one
}

// Rational32 is a rational with 32-bit numerator and denominator.
type Rational32 = Rational[int32]

// Rational64 is a rational with 64-bit numerator and denominator.
type Rational64 = Rational[int64]

// New returns a rational equal to num/den reduced to lowest terms,
// with the sign moved to the numerator.
//
// New returns an error:
//   - with kind [ZeroDenominator] if den is 0.
//   - with kind [Overflow] if the reduced result cannot be represented by T,
//     for example 1/-128 for int8.
func New[T Integer](num, den T) (Rational[T], error) {
	if den == 0 {
		return Rational[T]{}, &ParseError{Kind: ZeroDenominator}
	}
	if num == 0 {
		return Rational[T]{}, nil
	}
	neg := (num < 0) != (den < 0)
	n, d := abs(num), abs(den)
	g := gcd(n, d)
	return newFromMagnitudes[T](neg, n/g, d/g)
}

// newFromMagnitudes builds a rational from a sign and a reduced pair
// of absolute values.
func newFromMagnitudes[T Integer](neg bool, n, d uint64) (Rational[T], error) {
	num, ok := fromMagnitude[T](neg, n)
	if !ok {
		return Rational[T]{}, &ParseError{Kind: Overflow, Msg: fmt.Sprintf("numerator does not fit into %T", num)}
	}
	den, ok := fromMagnitude[T](false, d)
	if !ok {
		return Rational[T]{}, &ParseError{Kind: Overflow, Msg: fmt.Sprintf("denominator does not fit into %T", den)}
	}
	return Rational[T]{num: num, dm1: den - 1}, nil
}

// MustNew is like [New] but panics if the rational cannot be constructed.
// It simplifies safe initialization of global variables holding rationals.
func MustNew[T Integer](num, den T) Rational[T] {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewFromInt returns a rational equal to the integer num.
func NewFromInt[T Integer](num T) Rational[T] {
	return Rational[T]{num: num}
}

// Parse converts a literal to a rational in lowest terms.
// It accepts fractions, decimals and scientific notation, for example
// "-35/4", "3.1415", "-47e-2". See [ParseFlexible] for the grammar and errors.
func Parse[T Integer](s string) (Rational[T], error) {
	num, den, err := ParseFlexible[T](s)
	if err != nil {
		return Rational[T]{}, err
	}
	r, err := New(num, den)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Literal = s
		}
		return Rational[T]{}, err
	}
	return r, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParse[T Integer](s string) Rational[T] {
	r, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return r
}

// Num returns the numerator of r.
// The numerator carries the sign of r.
func (r Rational[T]) Num() T {
	return r.num
}

// Denom returns the denominator of r.
// The denominator is always positive.
func (r Rational[T]) Denom() T {
	return r.dm1 + 1
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rational[T]) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// IsZero returns true if r == 0.
func (r Rational[T]) IsZero() bool {
	return r.num == 0
}

// IsNeg returns true if r < 0.
func (r Rational[T]) IsNeg() bool {
	return r.num < 0
}

// IsPos returns true if r > 0.
func (r Rational[T]) IsPos() bool {
	return r.num > 0
}

// IsInt returns true if the denominator of r is 1.
func (r Rational[T]) IsInt() bool {
	return r.dm1 == 0
}

// Neg returns -r.
// Neg returns an overflow error if the numerator is the minimum value of T.
func (r Rational[T]) Neg() (Rational[T], error) {
	num, ok := neg(r.num)
	if !ok {
		return Rational[T]{}, fmt.Errorf("computing [-%v]: %w", r, ErrOverflow)
	}
	return Rational[T]{num: num, dm1: r.dm1}, nil
}

// Abs returns |r|.
// Abs returns an overflow error if the numerator is the minimum value of T.
func (r Rational[T]) Abs() (Rational[T], error) {
	if r.num >= 0 {
		return r, nil
	}
	return r.Neg()
}

// Inv returns 1/r.
// Inv returns an error if r is 0 or if the result cannot be represented by T.
func (r Rational[T]) Inv() (Rational[T], error) {
	if r.IsZero() {
		return Rational[T]{}, fmt.Errorf("computing [1 / %v]: %w", r, ErrZeroDenominator)
	}
	s, err := newFromMagnitudes[T](r.IsNeg(), abs(r.Denom()), abs(r.num))
	if err != nil {
		return Rational[T]{}, fmt.Errorf("computing [1 / %v]: %w", r, err)
	}
	return s, nil
}

// Add returns the sum of r and e.
// Intermediate values may exceed T; Add returns an overflow error only
// if the exact result cannot be represented by T.
func (r Rational[T]) Add(e Rational[T]) (Rational[T], error) {
	f, err := addFast(r, e, false)
	if err != nil {
		f, err = addSlow(r, e, false)
		if err != nil {
			return Rational[T]{}, fmt.Errorf("computing [%v + %v]: %w", r, e, err)
		}
	}
	return f, nil
}

// Sub returns the difference of r and e.
// See [Rational.Add] for the overflow rules.
func (r Rational[T]) Sub(e Rational[T]) (Rational[T], error) {
	f, err := addFast(r, e, true)
	if err != nil {
		f, err = addSlow(r, e, true)
		if err != nil {
			return Rational[T]{}, fmt.Errorf("computing [%v - %v]: %w", r, e, err)
		}
	}
	return f, nil
}

// addFast computes r ± e using checked arithmetic over T.
func addFast[T Integer](r, e Rational[T], subtract bool) (Rational[T], error) {
	b, d := r.Denom(), e.Denom()
	g := T(gcd(abs(b), abs(d)))
	x, ok := mul(r.num, d/g)
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	y, ok := mul(e.num, b/g)
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	var num T
	if subtract {
		num, ok = sub(x, y)
	} else {
		num, ok = add(x, y)
	}
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	den, ok := mul(b, d/g)
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	return New(num, den)
}

// Mul returns the product of r and e.
// See [Rational.Add] for the overflow rules.
func (r Rational[T]) Mul(e Rational[T]) (Rational[T], error) {
	f, err := mulFast(r, e)
	if err != nil {
		f, err = mulSlow(r, e)
		if err != nil {
			return Rational[T]{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
		}
	}
	return f, nil
}

// mulFast computes r * e, cross-reducing before multiplying.
func mulFast[T Integer](r, e Rational[T]) (Rational[T], error) {
	if r.IsZero() || e.IsZero() {
		return Rational[T]{}, nil
	}
	a, b := abs(r.num), abs(r.Denom())
	c, d := abs(e.num), abs(e.Denom())
	g1, g2 := gcd(a, d), gcd(c, b)
	a, d = a/g1, d/g1
	c, b = c/g2, b/g2
	x, ok := fromMagnitude[T](false, a)
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	y, ok := fromMagnitude[T](false, c)
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	num, ok := mul(x, y)
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	den, ok := mul(T(b), T(d))
	if !ok {
		return Rational[T]{}, ErrOverflow
	}
	if r.IsNeg() != e.IsNeg() {
		num = -num
	}
	return Rational[T]{num: num, dm1: den - 1}, nil
}

// Quo returns the quotient of r and e.
// Quo returns an error if e is 0 or if the result cannot be represented by T.
func (r Rational[T]) Quo(e Rational[T]) (Rational[T], error) {
	if e.IsZero() {
		return Rational[T]{}, fmt.Errorf("computing [%v / %v]: %w", r, e, ErrZeroDenominator)
	}
	f, err := quoFast(r, e)
	if err != nil {
		f, err = quoSlow(r, e)
		if err != nil {
			return Rational[T]{}, fmt.Errorf("computing [%v / %v]: %w", r, e, err)
		}
	}
	return f, nil
}

// quoFast computes r / e as r * (1 / e).
func quoFast[T Integer](r, e Rational[T]) (Rational[T], error) {
	inv, err := e.Inv()
	if err != nil {
		return Rational[T]{}, err
	}
	return mulFast(r, inv)
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
func (r Rational[T]) Cmp(e Rational[T]) int {
	c, err := cmpFast(r, e)
	if err != nil {
		return cmpSlow(r, e)
	}
	return c
}

func cmpFast[T Integer](r, e Rational[T]) (int, error) {
	if r == e {
		return 0, nil
	}
	x, ok := mul(r.num, e.Denom())
	if !ok {
		return 0, ErrOverflow
	}
	y, ok := mul(e.num, r.Denom())
	if !ok {
		return 0, ErrOverflow
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a rational value.
// Integers are formatted without a denominator, so the result is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits ['/' digits]
//
// The result can be converted back using [Parse], unless the numerator
// is the minimum value of T.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational[T]) String() string {
	s := strconv.FormatInt(int64(r.num), 10)
	if r.IsInt() {
		return s
	}
	return s + "/" + strconv.FormatInt(int64(r.Denom()), 10)
}

// FloatString returns a string representation of r in decimal form
// with prec digits of precision after the decimal point.
// The last digit is rounded to nearest, with halves rounded away from zero.
func (r Rational[T]) FloatString(prec int) string {
	return r.Rat().FloatString(prec)
}

// Float64 returns the nearest float64 value for r and a bool indicating
// whether f represents r exactly.
func (r Rational[T]) Float64() (f float64, exact bool) {
	return r.Rat().Float64()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational[T]) UnmarshalText(text []byte) error {
	var err error
	*r, err = Parse[T](string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte and int64 values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Rational[T]) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*r, err = Parse[T](value)
	case []byte:
		*r, err = Parse[T](string(value))
	case int64:
		*r, err = NewFromRat[T](new(big.Rat).SetInt64(value))
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, Rational[T]{}, ErrMalformedLiteral)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The value is stored as text, see [Rational.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rational[T]) Value() (driver.Value, error) {
	return r.String(), nil
}
