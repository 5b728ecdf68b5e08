package hash

import (
	"fmt"
	gohash "hash"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
)

// Hasher computes digests of byte slices. Implementations must be safe for
// concurrent use.
type Hasher interface {
	// Code is the multicodec code of the hash function.
	Code() uint64
	// Size is the length of the raw digest in bytes.
	Size() uint64
	Sum(bytes []byte) (Digest, error)
}

type Digest interface {
	Code() uint64
	Size() uint64
	// Digest is the raw hash output.
	Digest() []byte
	// Bytes is the multihash encoding of the digest.
	Bytes() []byte
}

type digest struct {
	code   uint64
	size   uint64
	digest []byte
	bytes  []byte
}

func (d *digest) Bytes() []byte {
	return d.bytes
}

func (d *digest) Code() uint64 {
	return d.code
}

func (d *digest) Digest() []byte {
	return d.digest
}

func (d *digest) Size() uint64 {
	return d.size
}

func NewDigest(code uint64, size uint64, digst []byte, bytes []byte) Digest {
	return &digest{code, size, digst, bytes}
}

// Primitive is the three step hash protocol: Reset initializes state, Write
// absorbs input and Sum finalizes the digest.
type Primitive = gohash.Hash

type hasher struct {
	code  uint64
	size  uint64
	newFn func() Primitive
}

func (h hasher) Code() uint64 {
	return h.code
}

func (h hasher) Size() uint64 {
	return h.size
}

func (h hasher) Sum(b []byte) (Digest, error) {
	p := h.newFn()
	p.Reset()
	if _, err := p.Write(b); err != nil {
		return nil, fmt.Errorf("writing to %s hash: %w", multicodec.Code(h.code), err)
	}
	return FromRaw(h.code, p.Sum(nil))
}

// NewHasher builds a Hasher from a hash primitive constructor. A fresh
// primitive is created for every Sum so the hasher is safe to share.
func NewHasher(code uint64, size uint64, newFn func() Primitive) Hasher {
	return hasher{code, size, newFn}
}

// FromRaw builds a Digest from raw hash output produced by the hash function
// with the given multicodec code.
func FromRaw(code uint64, raw []byte) (Digest, error) {
	d, err := multihash.Encode(raw, code)
	if err != nil {
		return nil, fmt.Errorf("encoding %s multihash: %w", multicodec.Code(code), err)
	}
	return NewDigest(code, uint64(len(raw)), raw, d), nil
}

// Decode parses a multihash encoded digest.
func Decode(mh []byte) (Digest, error) {
	dmh, err := multihash.Decode(mh)
	if err != nil {
		return nil, fmt.Errorf("decoding multihash: %w", err)
	}
	return NewDigest(dmh.Code, uint64(dmh.Length), dmh.Digest, mh), nil
}

// Link returns a CIDv1 with the raw codec addressing the hashed data.
func Link(d Digest) cid.Cid {
	return cid.NewCidV1(uint64(multicodec.Raw), d.Bytes())
}
