package result

// Result is either a successful value of type O or a failure of type X.
// Exactly one of the two is present. Results are plain values: they are
// comparable with == when O and X are, and safe to share between goroutines.
type Result[O any, X any] interface {
	isResult(ok O, err X)
}

type okResult[O any, X any] struct {
	value O
}

func (okResult[O, X]) isResult(ok O, err X) {}

type errResult[O any, X any] struct {
	err X
}

func (errResult[O, X]) isResult(ok O, err X) {}

// Ok returns a success result wrapping value.
func Ok[O any, X any](value O) Result[O, X] {
	return okResult[O, X]{value}
}

// Error returns a failure result wrapping err.
func Error[O any, X any](err X) Result[O, X] {
	return errResult[O, X]{err}
}

// IsOk reports whether r holds a success value.
func IsOk[O, X any](r Result[O, X]) bool {
	_, ok := r.(okResult[O, X])
	return ok
}

// Unwrap splits a result into a (value, failure) pair. Exactly one of the
// two is meaningful; the other is the zero value of its type.
func Unwrap[O, X any](r Result[O, X]) (O, X) {
	var o O
	var x X
	switch v := r.(type) {
	case okResult[O, X]:
		o = v.value
	case errResult[O, X]:
		x = v.err
	}
	return o, x
}

// Wrap turns a Go style (value, error) function into a result.
func Wrap[O any](action func() (O, error)) Result[O, error] {
	o, err := action()
	if err != nil {
		return Error[O](err)
	}
	return Ok[O, error](o)
}

// MatchResultR0 calls onOk or onError depending on the result.
func MatchResultR0[O, X any](r Result[O, X], onOk func(ok O), onError func(err X)) {
	switch v := r.(type) {
	case okResult[O, X]:
		onOk(v.value)
	case errResult[O, X]:
		onError(v.err)
	}
}

// MatchResultR1 is MatchResultR0 for handlers returning one value.
func MatchResultR1[O, X, R1 any](r Result[O, X], onOk func(ok O) R1, onError func(err X) R1) R1 {
	switch v := r.(type) {
	case okResult[O, X]:
		return onOk(v.value)
	case errResult[O, X]:
		return onError(v.err)
	}
	var r1 R1
	return r1
}

// MatchResultR2 is MatchResultR0 for handlers returning two values.
func MatchResultR2[O, X, R1, R2 any](r Result[O, X], onOk func(ok O) (R1, R2), onError func(err X) (R1, R2)) (R1, R2) {
	switch v := r.(type) {
	case okResult[O, X]:
		return onOk(v.value)
	case errResult[O, X]:
		return onError(v.err)
	}
	var r1 R1
	var r2 R2
	return r1, r2
}

// MatchResultR3 is MatchResultR0 for handlers returning three values.
func MatchResultR3[O, X, R1, R2, R3 any](r Result[O, X], onOk func(ok O) (R1, R2, R3), onError func(err X) (R1, R2, R3)) (R1, R2, R3) {
	switch v := r.(type) {
	case okResult[O, X]:
		return onOk(v.value)
	case errResult[O, X]:
		return onError(v.err)
	}
	var r1 R1
	var r2 R2
	var r3 R3
	return r1, r2, r3
}

// MapOk transforms the success value and leaves failures untouched.
func MapOk[O, O2, X any](r Result[O, X], mapFn func(O) O2) Result[O2, X] {
	return MapResultR0(r, mapFn, func(err X) X { return err })
}

// MapError transforms the failure and leaves success values untouched.
func MapError[O, X, X2 any](r Result[O, X], mapFn func(X) X2) Result[O, X2] {
	return MapResultR0(r, func(ok O) O { return ok }, mapFn)
}

// MapResultR0 transforms whichever side of the result is present.
func MapResultR0[O, O2, X, X2 any](r Result[O, X], mapOk func(O) O2, mapErr func(X) X2) Result[O2, X2] {
	return MatchResultR1(r, func(ok O) Result[O2, X2] {
		return Ok[O2, X2](mapOk(ok))
	}, func(err X) Result[O2, X2] {
		return Error[O2](mapErr(err))
	})
}

// MapResultR1 is MapResultR0 for mappers that also return an extra value.
func MapResultR1[O, O2, X, X2, R1 any](r Result[O, X], mapOk func(O) (O2, R1), mapErr func(X) (X2, R1)) (Result[O2, X2], R1) {
	return MatchResultR2(r, func(ok O) (Result[O2, X2], R1) {
		o2, r1 := mapOk(ok)
		return Ok[O2, X2](o2), r1
	}, func(err X) (Result[O2, X2], R1) {
		x2, r1 := mapErr(err)
		return Error[O2](x2), r1
	})
}

// And returns r2 if r1 is ok, otherwise the failure of r1.
func And[O, O2, X any](r1 Result[O, X], r2 Result[O2, X]) Result[O2, X] {
	return AndThen(r1, func(O) Result[O2, X] { return r2 })
}

// AndThen calls after with the value of r if r is ok, otherwise it returns
// the failure of r.
func AndThen[O, O2, X any](r Result[O, X], after func(O) Result[O2, X]) Result[O2, X] {
	return MatchResultR1(r, after, func(err X) Result[O2, X] {
		return Error[O2](err)
	})
}

// Or returns r1 if it is ok, otherwise r2.
func Or[O, X, X2 any](r1 Result[O, X], r2 Result[O, X2]) Result[O, X2] {
	return OrElse(r1, func(X) Result[O, X2] { return r2 })
}

// OrElse calls after with the failure of r if r failed, otherwise it returns
// the value of r.
func OrElse[O, X, X2 any](r Result[O, X], after func(X) Result[O, X2]) Result[O, X2] {
	return MatchResultR1(r, func(ok O) Result[O, X2] {
		return Ok[O, X2](ok)
	}, after)
}
