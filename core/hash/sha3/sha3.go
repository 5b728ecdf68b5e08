package sha3

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-bytecodec/core/hash"
	"golang.org/x/crypto/sha3"
)

const (
	Code256 = uint64(multicodec.Sha3_256)
	Code384 = uint64(multicodec.Sha3_384)
	Code512 = uint64(multicodec.Sha3_512)
)

var (
	Hasher256 = hash.NewHasher(Code256, 32, sha3.New256)
	Hasher384 = hash.NewHasher(Code384, 48, sha3.New384)
	Hasher512 = hash.NewHasher(Code512, 64, sha3.New512)
)
