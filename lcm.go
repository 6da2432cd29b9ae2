package pulsim

import "math/bits"

// gcd returns the greatest common divisor of a and b using binary GCD
// (Stein's algorithm): strip common powers of two, then subtract-and-shift
// until both values converge.
//
func gcd(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return a | b
	}
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	b >>= bits.TrailingZeros64(b)
	for a != b {
		if a > b {
			a -= b
			a >>= bits.TrailingZeros64(a)
		} else {
			b -= a
			b >>= bits.TrailingZeros64(b)
		}
	}
	return a << shift
}

// lcm returns the least common multiple of a and b.
//
func lcm(a, b uint64) uint64 {
	if a == 0 && b == 0 {
		return 0
	}
	return a * (b / gcd(a, b))
}
