package solo

import (
	"errors"

	"github.com/ib-77/aid/pkg/rop"
)

func Succeed[O, E any](value O) rop.Result[O, E] {
	return rop.Ok[O, E](value)
}

func Fail[O, E any](err E) rop.Result[O, E] {
	return rop.Err[O, E](err)
}

// Try lifts a Go (value, error) pair into a Result.
func Try[O any](value O, err error) rop.Result[O, error] {
	if err != nil {
		return rop.Err[O](err)
	}
	return rop.Ok[O, error](value)
}

// Unpack turns a Result back into a Go (value, error) pair.
func Unpack[O any](input rop.Result[O, error]) (O, error) {
	if input.IsOk() {
		return input.Value(), nil
	}
	var zero O
	return zero, input.Err()
}

func Map[O, E, U any](input rop.Result[O, E], onOk func(O) U) rop.Result[U, E] {
	if input.IsOk() {
		return rop.Ok[U, E](onOk(input.Value()))
	} else if input.IsErr() {
		return rop.Err[U](input.Err())
	}
	rop.Abort("applying map to a result that has no value and no error")
	return rop.Result[U, E]{}
}

func MapErr[O, E, F any](input rop.Result[O, E], onErr func(E) F) rop.Result[O, F] {
	if input.IsOk() {
		return rop.Ok[O, F](input.Value())
	} else if input.IsErr() {
		return rop.Err[O](onErr(input.Err()))
	}
	rop.Abort("applying mapErr to a result that has no value and no error")
	return rop.Result[O, F]{}
}

// MapOr collapses input to onOk(v), or def for anything that is not Ok.
func MapOr[O, E, U any](input rop.Result[O, E], def U, onOk func(O) U) U {
	if input.IsOk() {
		return onOk(input.Value())
	}
	return def
}

func MapOrElse[O, E, U any](input rop.Result[O, E], onErr func(E) U, onOk func(O) U) U {
	if input.IsOk() {
		return onOk(input.Value())
	}
	return onErr(input.Err())
}

// And returns other when input is Ok, otherwise input's error.
func And[O, E, U any](input rop.Result[O, E], other rop.Result[U, E]) rop.Result[U, E] {
	if input.IsOk() {
		return other
	}
	return rop.Err[U](input.Err())
}

func AndThen[O, E, U any](input rop.Result[O, E], onOk func(O) rop.Result[U, E]) rop.Result[U, E] {
	if input.IsOk() {
		return onOk(input.Value())
	}
	return rop.Err[U](input.Err())
}

// Or returns input's value when input is Ok, otherwise other.
func Or[O, E, F any](input rop.Result[O, E], other rop.Result[O, F]) rop.Result[O, F] {
	if input.IsOk() {
		return rop.Ok[O, F](input.Value())
	}
	if !input.IsErr() {
		rop.Abort("applying or to a result that has no value and no error")
	}
	return other
}

func OrElse[O, E, F any](input rop.Result[O, E], onErr func(E) rop.Result[O, F]) rop.Result[O, F] {
	if input.IsOk() {
		return rop.Ok[O, F](input.Value())
	}
	return onErr(input.Err())
}

func Flatten[O, E any](input rop.Result[rop.Result[O, E], E]) rop.Result[O, E] {
	return AndThen(input, func(inner rop.Result[O, E]) rop.Result[O, E] {
		return inner
	})
}

// Validate turns an Ok into an Err carrying the check's payload when check
// rejects the value.
func Validate[O, E any](input rop.Result[O, E], check func(O) (bool, E)) rop.Result[O, E] {
	return AndThen(input, func(v O) rop.Result[O, E] {
		if valid, err := check(v); !valid {
			return rop.Err[O](err)
		}
		return rop.Ok[O, E](v)
	})
}

// ValidateAll runs every check against the Ok value and joins the failures
// with errors.Join. With breakOnError it stops at the first failing check.
func ValidateAll[O any](input rop.Result[O, error], breakOnError bool, checks ...func(O) error) rop.Result[O, error] {
	return AndThen(input, func(v O) rop.Result[O, error] {
		var errs []error
		for _, check := range checks {
			if err := check(v); err != nil {
				errs = append(errs, err)
				if breakOnError {
					break
				}
			}
		}
		if len(errs) > 0 {
			return rop.Err[O](errors.Join(errs...))
		}
		return rop.Ok[O, error](v)
	})
}

// FailOnError turns an Ok into an Err when maybeErr reports one.
func FailOnError[O any](input rop.Result[O, error], maybeErr func(O) error) rop.Result[O, error] {
	return Validate(input, func(v O) (bool, error) {
		err := maybeErr(v)
		return err == nil, err
	})
}

// DoubleMap maps an Ok like Map and hands an Err to onErr before passing it on.
func DoubleMap[O, E, U any](input rop.Result[O, E], onOk func(O) U, onErr func(E)) rop.Result[U, E] {
	return MapErr(Map(input, onOk), func(e E) E {
		onErr(e)
		return e
	})
}

func TeeIf[O, E any](input rop.Result[O, E], condition func(O) bool, onOk func(O)) rop.Result[O, E] {
	return Tee(input, func(v O) {
		if condition(v) {
			onOk(v)
		}
	})
}

func Tee[O, E any](input rop.Result[O, E], onOk func(O)) rop.Result[O, E] {
	if input.IsOk() {
		view := input
		onOk(view.Value())
	}
	return input
}

func DoubleTee[O, E any](input rop.Result[O, E], onOk func(O), onErr func(E)) rop.Result[O, E] {
	view := input
	if view.IsOk() {
		onOk(view.Value())
	} else {
		onErr(view.Err())
	}
	return input
}

func Contains[O comparable, E any](input rop.Result[O, E], x O) bool {
	return input.IsOk() && input.Value() == x
}

func ContainsErr[O any, E comparable](input rop.Result[O, E], x E) bool {
	return input.IsErr() && input.Err() == x
}

// Equal reports whether a and b hold the same slot with equal payloads.
// Two emptied results are equal.
func Equal[O, E comparable](a, b rop.Result[O, E]) bool {
	switch {
	case a.IsOk() && b.IsOk():
		return a.Value() == b.Value()
	case a.IsErr() && b.IsErr():
		return a.Err() == b.Err()
	}
	return !a.IsOk() && !a.IsErr() && !b.IsOk() && !b.IsErr()
}
