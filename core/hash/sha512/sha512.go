// Package sha512 provides the SHA-384 and SHA-512 members of the SHA-2
// family.
package sha512

import (
	"crypto/sha512"

	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-bytecodec/core/hash"
)

const (
	Code384 = uint64(multicodec.Sha2_384)
	Code512 = uint64(multicodec.Sha2_512)
)

const (
	Size384 = sha512.Size384
	Size512 = sha512.Size
)

var (
	Hasher384 = hash.NewHasher(Code384, Size384, sha512.New384)
	Hasher512 = hash.NewHasher(Code512, Size512, sha512.New)
)
