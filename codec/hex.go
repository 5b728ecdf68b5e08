package codec

import (
	"encoding/hex"

	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// HexStr2Bytes decodes a hex string, case-insensitively. An odd length
// string is read as if it had a leading '0'. Byte order follows the text.
func HexStr2Bytes(s string) result.Result[Bytes, failure.Failure] {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return fail[Bytes](InvalidHexName, "non-hex character %q at offset %d", s[i], i)
		}
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fail[Bytes](InvalidHexName, "decoding hex: %s", err)
	}
	return ok(Bytes(b))
}

// Hex returns b as lowercase hex, two digits per byte.
func (b Bytes) Hex() string {
	return hex.EncodeToString(b)
}

// Bytes2HexStr encodes xs as lowercase hex, two digits per byte, in array
// order.
func Bytes2HexStr[N Number](xs []N) result.Result[string, failure.Failure] {
	return result.MapOk(FromInts(xs), Bytes.Hex)
}
