package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

// Str2Bytes maps every code point of s to one byte. Strings that are not
// valid UTF-8 or contain a code point above 255 are rejected.
func Str2Bytes(s string) result.Result[Bytes, failure.Failure] {
	b := make(Bytes, 0, len(s))
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return fail[Bytes](InvalidStringName, "invalid UTF-8 at offset %d", i)
			}
		}
		if r > 0xff {
			return fail[Bytes](InvalidStringName, "code point %U at offset %d does not fit in a byte", r, i)
		}
		b = append(b, byte(r))
	}
	return ok(b)
}

// Text returns the string whose code points are the bytes of b.
func (b Bytes) Text() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteRune(rune(v))
	}
	return sb.String()
}

// Bytes2Str maps every byte of xs to the character with that code point.
func Bytes2Str[N Number](xs []N) result.Result[string, failure.Failure] {
	return result.MapOk(FromInts(xs), Bytes.Text)
}
