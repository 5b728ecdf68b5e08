package blake2b

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-bytecodec/core/hash"
	"golang.org/x/crypto/blake2b"
)

// blake2b-256
const Code = uint64(multicodec.Blake2b256)

const Size = blake2b.Size256

func new256() hash.Primitive {
	// only fails for keys longer than 64 bytes
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

var Hasher = hash.NewHasher(Code, Size, new256)
