package codec

import (
	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

// Multibase renders b as self-describing multibase text.
func (b Bytes) Multibase(enc multibase.Encoding) (string, error) {
	return multibase.Encode(enc, b)
}

// FromMultibase decodes multibase text in any supported encoding.
func FromMultibase(s string) result.Result[Bytes, failure.Failure] {
	_, b, err := multibase.Decode(s)
	if err != nil {
		return fail[Bytes](InvalidMultibaseName, "decoding multibase: %s", err)
	}
	return ok(Bytes(b))
}
