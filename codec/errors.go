package codec

import (
	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

// Failure names. They are stable and safe to branch on.
const (
	InvalidBytesName     = "InvalidBytes"
	InvalidUintName      = "InvalidUint"
	InvalidSizeName      = "InvalidSize"
	InvalidStringName    = "InvalidString"
	InvalidHexName       = "InvalidHex"
	InvalidMultibaseName = "InvalidMultibase"
	HashFailedName       = "HashFailed"
)

// IsFailure reports whether err is, or wraps, a codec failure with the given
// name.
func IsFailure(err error, name string) bool {
	return failure.Is(err, name)
}

// fail records the stack from the function that rejected the input.
func fail[T any](name string, format string, args ...any) result.Result[T, failure.Failure] {
	return result.Error[T](failure.ErrorfDepth(1, name, format, args...))
}

func ok[T any](value T) result.Result[T, failure.Failure] {
	return result.Ok[T, failure.Failure](value)
}
