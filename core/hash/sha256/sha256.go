package sha256

import (
	"github.com/minio/sha256-simd"
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-bytecodec/core/hash"
)

// sha2-256
const Code = uint64(multicodec.Sha2_256)

// sha2-256 hash has a 32-byte sum
const Size = sha256.Size

var Hasher = hash.NewHasher(Code, Size, sha256.New)
