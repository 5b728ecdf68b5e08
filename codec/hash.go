package codec

import (
	"slices"

	"github.com/storacha/go-bytecodec/core/hash"
	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

func digest(h hash.Hasher, b Bytes) result.Result[Bytes, failure.Failure] {
	if h == nil {
		return fail[Bytes](HashFailedName, "no hasher")
	}
	d, err := h.Sum(b)
	if err != nil {
		return fail[Bytes](HashFailedName, "hashing: %s", err)
	}
	return ok(Bytes(slices.Clone(d.Digest())))
}

// HashIntoBytesFromString hashes the byte form of s (see [Str2Bytes]) with h
// and returns the raw digest.
func HashIntoBytesFromString(h hash.Hasher, s string) result.Result[Bytes, failure.Failure] {
	return result.AndThen(Str2Bytes(s), func(b Bytes) result.Result[Bytes, failure.Failure] {
		return digest(h, b)
	})
}

// HashIntoBytesFromBytes validates xs, hashes it with h and returns the raw
// digest.
func HashIntoBytesFromBytes[N Number](h hash.Hasher, xs []N) result.Result[Bytes, failure.Failure] {
	return result.AndThen(FromInts(xs), func(b Bytes) result.Result[Bytes, failure.Failure] {
		return digest(h, b)
	})
}
