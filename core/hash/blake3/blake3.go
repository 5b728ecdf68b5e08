package blake3

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-bytecodec/core/hash"
	"github.com/zeebo/blake3"
)

const Code = uint64(multicodec.Blake3)

// Size is the default blake3 output length.
const Size = 32

func newHasher() hash.Primitive {
	return blake3.New()
}

var Hasher = hash.NewHasher(Code, Size, newHasher)
