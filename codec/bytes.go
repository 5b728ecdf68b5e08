// Package codec converts between byte-arrays, unsigned integers, hex strings
// and Latin-1 strings.
//
// Two byte orders are in use and are deliberately kept apart:
//
//   - integer conversions are little-endian, index 0 is the least
//     significant byte;
//   - hex conversions follow the text, index 0 is the first pair of digits.
//
// Functions taking untyped byte-arrays accept a slice of any integer or float
// type and validate it with [IsBytes]. Invalid input never panics; it yields
// a failed result.
package codec

import (
	"math"
	"math/big"
	"slices"

	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
	"golang.org/x/exp/constraints"
)

// Number is any value that may or may not hold a byte.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bytes is a validated byte-array. Every element is in [0, 256) by
// construction.
type Bytes []byte

func isByte[N Number](n N) bool {
	f := float64(n)
	return f == math.Trunc(f) && f >= 0 && f < 256
}

// IsBytes reports whether every element of xs is an integer in [0, 256). An
// empty slice is a valid byte-array.
func IsBytes[N Number](xs []N) bool {
	for _, x := range xs {
		if !isByte(x) {
			return false
		}
	}
	return true
}

// FromInts validates xs and copies it into a Bytes value.
func FromInts[N Number](xs []N) result.Result[Bytes, failure.Failure] {
	for i, x := range xs {
		if !isByte(x) {
			return fail[Bytes](InvalidBytesName, "element %d (%v) is not a byte", i, x)
		}
	}
	b := make(Bytes, len(xs))
	for i, x := range xs {
		b[i] = byte(x)
	}
	return ok(b)
}

// Ints returns the byte-array as a slice of ints.
func (b Bytes) Ints() []int {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return ints
}

// Uint decodes b as a little-endian unsigned integer.
func (b Bytes) Uint() *big.Int {
	return new(big.Int).SetBytes(b.Reverse())
}

// Uint64 decodes b as a little-endian unsigned integer. It returns false if
// the value does not fit in 64 bits.
func (b Bytes) Uint64() (uint64, bool) {
	n := b.Uint()
	if !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

// Reverse returns a reversed copy of b.
func (b Bytes) Reverse() Bytes {
	r := slices.Clone(b)
	slices.Reverse(r)
	return r
}

// ReverseBytes returns the elements of xs in reverse order. The input is not
// modified.
func ReverseBytes[N Number](xs []N) result.Result[Bytes, failure.Failure] {
	return result.MapOk(FromInts(xs), Bytes.Reverse)
}
