package rational

import (
	"math/big"
	"sync"
)

// Rat converts r to a new [big.Rat].
func (r Rational[T]) Rat() *big.Rat {
	return setRat(new(big.Rat), r)
}

// NewFromRat converts a [big.Rat] to a rational of type T.
// NewFromRat returns an error with kind [Overflow] if the numerator or
// the denominator of x in lowest terms cannot be represented by T.
func NewFromRat[T Integer](x *big.Rat) (Rational[T], error) {
	num, den := x.Num(), x.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		var z T
		return Rational[T]{}, newParseError(Overflow, "", "%v does not fit into %T", x.RatString(), z)
	}
	// big.Rat is always normalized
	n, d := num.Int64(), den.Int64()
	return newFromMagnitudes[T](n < 0, abs(n), abs(d))
}

// setRat sets z to r and returns z.
func setRat[T Integer](z *big.Rat, r Rational[T]) *big.Rat {
	return z.SetFrac64(int64(r.Num()), int64(r.Denom()))
}

// addSlow computes r ± e using big.Rat arithmetic.
func addSlow[T Integer](r, e Rational[T], subtract bool) (Rational[T], error) {
	x, y := getRat(), getRat()
	defer putRat(x)
	defer putRat(y)
	setRat(x, r)
	setRat(y, e)
	if subtract {
		x.Sub(x, y)
	} else {
		x.Add(x, y)
	}
	return NewFromRat[T](x)
}

// mulSlow computes r * e using big.Rat arithmetic.
func mulSlow[T Integer](r, e Rational[T]) (Rational[T], error) {
	x, y := getRat(), getRat()
	defer putRat(x)
	defer putRat(y)
	setRat(x, r)
	setRat(y, e)
	x.Mul(x, y)
	return NewFromRat[T](x)
}

// quoSlow computes r / e using big.Rat arithmetic.
// If e is 0, the result is unpredictable.
func quoSlow[T Integer](r, e Rational[T]) (Rational[T], error) {
	x, y := getRat(), getRat()
	defer putRat(x)
	defer putRat(y)
	setRat(x, r)
	setRat(y, e)
	x.Quo(x, y)
	return NewFromRat[T](x)
}

// cmpSlow compares r and e using big.Rat arithmetic.
func cmpSlow[T Integer](r, e Rational[T]) int {
	x, y := getRat(), getRat()
	defer putRat(x)
	defer putRat(y)
	setRat(x, r)
	setRat(y, e)
	return x.Cmp(y)
}

// rpool is a cache of reusable *big.Rat instances.
var rpool = sync.Pool{
	New: func() any {
		return new(big.Rat)
	},
}

// getRat obtains a *big.Rat from the pool.
func getRat() *big.Rat {
	return rpool.Get().(*big.Rat)
}

// putRat returns the *big.Rat into the pool.
func putRat(x *big.Rat) {
	rpool.Put(x)
}
