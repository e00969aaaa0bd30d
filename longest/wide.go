// File: wide.go
// Role: 128-bit two's-complement accumulator for relaxation.
//
// Every distance produced during relaxation is the weight of a walk of at
// most passes·E edges, each weight within int64. A 128-bit value holds such
// sums exactly while V·E < 2^63, so intermediate values never wrap and the
// int64 range is checked only once, after cycle detection.

package longest

import "math/bits"

// wide is hi·2^64 + lo.
type wide struct {
	hi int64
	lo uint64
}

// wideOf sign-extends v.
func wideOf(v int64) wide {
	if v < 0 {
		return wide{hi: -1, lo: uint64(v)}
	}

	return wide{lo: uint64(v)}
}

// add returns a+v.
func (a wide) add(v int64) wide {
	b := wideOf(v)
	lo, carry := bits.Add64(a.lo, b.lo, 0)

	return wide{hi: a.hi + b.hi + int64(carry), lo: lo}
}

// less reports a < b.
func (a wide) less(b wide) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}

	return a.lo < b.lo
}

// int64 narrows a; ok is false when a is outside the int64 range.
func (a wide) int64() (v int64, ok bool) {
	v = int64(a.lo)
	if (a.hi == 0 && v >= 0) || (a.hi == -1 && v < 0) {
		return v, true
	}

	return 0, false
}

// wideDist is the relaxation-time counterpart of Distance.
type wideDist struct {
	reached bool
	v       wide
}
