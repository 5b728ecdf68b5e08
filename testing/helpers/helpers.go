package helpers

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Must takes return values from a function and returns the non-error one. If
// the error value is non-nil then it panics.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func RandomBytes(size int) []byte {
	bytes := make([]byte, size)
	_, _ = crand.Read(bytes)
	return bytes
}

// RandomInts returns size random ints, each a valid byte value.
func RandomInts(size int) []int {
	ints := make([]int, size)
	for i := range ints {
		ints[i] = rand.IntN(256)
	}
	return ints
}
