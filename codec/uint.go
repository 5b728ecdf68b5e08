package codec

import (
	"math"
	"math/big"

	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

// ToUint validates a number-like value as an unsigned integer.
func ToUint[N Number](n N) result.Result[*big.Int, failure.Failure] {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 0 {
		return fail[*big.Int](InvalidUintName, "%v is not an unsigned integer", n)
	}
	// integer types convert exactly through uint64, floats may not fit
	if N(1)/2 == 0 {
		return ok(new(big.Int).SetUint64(uint64(n)))
	}
	i, _ := big.NewFloat(f).Int(nil)
	return ok(i)
}

// Uint2Bytes encodes n as a minimal little-endian byte-array. Zero encodes
// as [0].
func Uint2Bytes(n *big.Int) result.Result[Bytes, failure.Failure] {
	if n == nil {
		return fail[Bytes](InvalidUintName, "missing integer")
	}
	if n.Sign() < 0 {
		return fail[Bytes](InvalidUintName, "%s is negative", n)
	}
	if n.Sign() == 0 {
		return ok(Bytes{0})
	}
	return ok(Bytes(n.Bytes()).Reverse())
}

// Uint2FixedLengthBytes encodes n like Uint2Bytes and appends zero bytes
// until the result has size elements. Zero padding sits at the most
// significant end, so the value is unchanged. An encoding already longer
// than size is returned as is.
func Uint2FixedLengthBytes(n *big.Int, size int) result.Result[Bytes, failure.Failure] {
	if size < 0 {
		return fail[Bytes](InvalidSizeName, "size %d is negative", size)
	}
	return result.MapOk(Uint2Bytes(n), func(b Bytes) Bytes {
		for len(b) < size {
			b = append(b, 0)
		}
		return b
	})
}

// Uint64ToBytes encodes n as a minimal little-endian byte-array.
func Uint64ToBytes(n uint64) Bytes {
	if n == 0 {
		return Bytes{0}
	}
	var b Bytes
	for n > 0 {
		b = append(b, byte(n))
		n >>= 8
	}
	return b
}

// Bytes2Uint decodes a little-endian byte-array. The fold runs from the last
// (most significant) element down to index 0.
func Bytes2Uint[N Number](xs []N) result.Result[*big.Int, failure.Failure] {
	return result.MapOk(FromInts(xs), Bytes.Uint)
}
