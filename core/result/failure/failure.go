package failure

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ipld/go-ipld-prime"
	pkgerrors "github.com/pkg/errors"
	"github.com/storacha/go-bytecodec/core/result/failure/datamodel"
)

// Named is an error that you can read a name from
type Named interface {
	Name() string
}

// WithStackTrace is an error that you can read a stack trace from
type WithStackTrace interface {
	Stack() string
}

// IPLDConvertable can be converted to an IPLD node
type IPLDConvertable interface {
	ToIPLD() (ipld.Node, error)
}

// Failure is an error with a stable name. Callers branch on Name, never on
// the message.
type Failure interface {
	error
	Named
}

type namedWithStackTrace struct {
	name  string
	stack pkgerrors.StackTrace
}

func (n namedWithStackTrace) Name() string {
	return n.name
}

func (n namedWithStackTrace) Stack() string {
	return fmt.Sprintf("%+v", n.stack)
}

func callers(skip int) pkgerrors.StackTrace {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])

	f := make(pkgerrors.StackTrace, n)
	for i := 0; i < n; i++ {
		f[i] = pkgerrors.Frame(pcs[i])
	}
	return f
}

type failure struct {
	namedWithStackTrace
	message string
}

func (f failure) Error() string {
	return f.message
}

func (f failure) Message() string {
	return f.message
}

func (f failure) ToIPLD() (ipld.Node, error) {
	return Model(f).ToIPLD()
}

var _ Failure = failure{}
var _ WithStackTrace = failure{}
var _ IPLDConvertable = failure{}

// newFailure records the stack starting skip frames above its caller's
// caller.
func newFailure(skip int, name string, message string) failure {
	return failure{namedWithStackTrace{name, callers(4 + skip)}, message}
}

// New creates a named failure, recording the stack of the caller.
func New(name string, message string) Failure {
	return newFailure(0, name, message)
}

// Errorf creates a named failure with a formatted message.
func Errorf(name string, format string, args ...any) Failure {
	return newFailure(0, name, fmt.Sprintf(format, args...))
}

// ErrorfDepth is Errorf for use inside helpers. The recorded stack skips
// depth frames above the caller, so depth 1 starts it at the helper's caller.
func ErrorfDepth(depth int, name string, format string, args ...any) Failure {
	return newFailure(depth, name, fmt.Sprintf(format, args...))
}

// FromError converts any error into a Failure. Errors that already carry a
// name keep it, everything else is named "Error".
func FromError(err error) Failure {
	if f, ok := err.(Failure); ok {
		return f
	}
	name := "Error"
	var named Named
	if errors.As(err, &named) {
		name = named.Name()
	}
	return newFailure(0, name, err.Error())
}

// Is reports whether err is, or wraps, a failure with the given name.
func Is(err error, name string) bool {
	var named Named
	if !errors.As(err, &named) {
		return false
	}
	return named.Name() == name
}

// Model returns the serializable form of err.
func Model(err error) *datamodel.FailureModel {
	model := datamodel.FailureModel{Message: err.Error()}
	if named, ok := err.(Named); ok {
		name := named.Name()
		model.Name = &name
	}
	if withStackTrace, ok := err.(WithStackTrace); ok {
		stack := withStackTrace.Stack()
		model.Stack = &stack
	}
	return &model
}
