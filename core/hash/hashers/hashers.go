// Package hashers looks up hash implementations by multicodec name or code.
package hashers

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"slices"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
	"github.com/storacha/go-bytecodec/core/hash"
	"github.com/storacha/go-bytecodec/core/hash/blake2b"
	"github.com/storacha/go-bytecodec/core/hash/blake3"
	"github.com/storacha/go-bytecodec/core/hash/sha256"
	"github.com/storacha/go-bytecodec/core/hash/sha3"
	"github.com/storacha/go-bytecodec/core/hash/sha512"
)

// Default is the hasher used when none is named.
var Default = sha256.Hasher

var registry = map[uint64]hash.Hasher{}

func init() {
	for _, h := range []hash.Hasher{
		sha256.Hasher,
		sha512.Hasher384,
		sha512.Hasher512,
		sha3.Hasher256,
		sha3.Hasher384,
		sha3.Hasher512,
		blake2b.Hasher,
		blake3.Hasher,
	} {
		registry[h.Code()] = h
	}
}

// Lookup returns the hasher registered under a multicodec name such as
// "sha2-256".
func Lookup(name string) (hash.Hasher, error) {
	var code multicodec.Code
	if err := code.Set(name); err != nil {
		return nil, fmt.Errorf("unknown hash %q", name)
	}
	return LookupCode(uint64(code))
}

// LookupCode returns the hasher registered under a multicodec code.
func LookupCode(code uint64) (hash.Hasher, error) {
	h, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("unsupported hash: %s (0x%x)", multicodec.Code(code), code)
	}
	return h, nil
}

// Names returns the multicodec names of all registered hashers, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for code := range registry {
		names = append(names, multicodec.Code(code).String())
	}
	slices.Sort(names)
	return names
}

// Verify checks that the multihash mh is the digest of data. The hash
// function is picked from the multihash code prefix.
func Verify(mh []byte, data []byte) error {
	code, err := varint.ReadUvarint(bytes.NewReader(mh))
	if err != nil {
		return fmt.Errorf("reading multihash code: %w", err)
	}

	h, err := LookupCode(code)
	if err != nil {
		return err
	}

	want, err := hash.Decode(mh)
	if err != nil {
		return err
	}

	got, err := h.Sum(data)
	if err != nil {
		return fmt.Errorf("hashing data: %w", err)
	}

	if subtle.ConstantTimeCompare(got.Digest(), want.Digest()) != 1 {
		return fmt.Errorf("%s digest mismatch", multicodec.Code(code))
	}
	return nil
}
