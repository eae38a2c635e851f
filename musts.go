package rational

import "fmt"

// MustAdd is like [Rational.Add] but panics if computing error.
func (r Rational[T]) MustAdd(e Rational[T]) Rational[T] {
	f, err := r.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", r, err))
	}
	return f
}

// MustSub is like [Rational.Sub] but panics if computing error.
func (r Rational[T]) MustSub(e Rational[T]) Rational[T] {
	f, err := r.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", r, err))
	}
	return f
}

// MustMul is like [Rational.Mul] but panics if computing error.
func (r Rational[T]) MustMul(e Rational[T]) Rational[T] {
	f, err := r.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", r, err))
	}
	return f
}

// MustQuo is like [Rational.Quo] but panics if computing error.
func (r Rational[T]) MustQuo(e Rational[T]) Rational[T] {
	f, err := r.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", r, err))
	}
	return f
}
