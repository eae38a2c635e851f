package rational

import "unsafe"

// Integer is a constraint that permits any signed integer type.
// It is the set of types a [Rational] can be built on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// maxInt returns the maximum value of T.
func maxInt[T Integer]() T {
	var z T
	bits := unsafe.Sizeof(z) * 8
	return ^(T(1) << (bits - 1))
}

// minInt returns the minimum value of T.
func minInt[T Integer]() T {
	return ^maxInt[T]()
}

// add calculates x + y and checks overflow.
func add[T Integer](x, y T) (z T, ok bool) {
	z = x + y
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0) {
		return 0, false
	}
	return z, true
}

// sub calculates x - y and checks overflow.
func sub[T Integer](x, y T) (z T, ok bool) {
	z = x - y
	if (x >= 0 && y < 0 && z < 0) || (x < 0 && y > 0 && z >= 0) {
		return 0, false
	}
	return z, true
}

// mul calculates x * y and checks overflow.
func mul[T Integer](x, y T) (z T, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == minInt[T]()) || (y == -1 && x == minInt[T]()) {
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// neg calculates -x and checks overflow.
func neg[T Integer](x T) (z T, ok bool) {
	if x == minInt[T]() {
		return 0, false
	}
	return -x, true
}

// fsa (Fused Shift and Addition) calculates x * 10 + b and checks overflow.
// Both x and b must be non-negative.
func fsa[T Integer](x T, b byte) (z T, ok bool) {
	z, ok = mul(x, T(10))
	if !ok {
		return 0, false
	}
	return add(z, T(b))
}

// pow10 calculates 10^power and checks overflow.
// If power is negative, the result is unpredictable.
func pow10[T Integer](power int) (z T, ok bool) {
	z = 1
	for i := 0; i < power; i++ {
		z, ok = mul(z, T(10))
		if !ok {
			return 0, false
		}
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
// Both 10^shift and the product must fit into T, even if x is 0.
func lsh[T Integer](x T, shift int) (z T, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift == 1 && x < maxInt[T]()/10 && x > minInt[T]()/10: // to speed up common case
		return x * 10, true
	}
	// General case
	y, ok := pow10[T](shift)
	if !ok {
		return 0, false
	}
	return mul(x, y)
}

// abs returns the absolute value of x as uint64.
// It is exact for every value of T, including the minimum.
func abs[T Integer](x T) uint64 {
	if x < 0 {
		return uint64(-int64(x))
	}
	return uint64(x)
}

// gcd returns the greatest common divisor of x and y.
// gcd(0, 0) is 0.
func gcd(x, y uint64) uint64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// fromMagnitude converts a sign and an absolute value back to T
// and checks overflow.
func fromMagnitude[T Integer](neg bool, m uint64) (z T, ok bool) {
	limit := uint64(maxInt[T]())
	if neg {
		if m > limit+1 {
			return 0, false
		}
		return T(-int64(m)), true
	}
	if m > limit {
		return 0, false
	}
	return T(m), true
}
