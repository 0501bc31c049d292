package rop

import (
	"fmt"
	"strings"
)

type slot uint8

const (
	emptied slot = iota
	okSlot
	errSlot
)

// Result holds exactly one of an Ok value or an Err value.
//
// The zero value holds neither and is treated as malformed by every
// operation that needs a payload. Extracting a payload through Value, Err,
// Expect or ExpectErr empties the instance.
type Result[O, E any] struct {
	slot slot
	ok   O
	err  E
}

func Ok[O, E any](value O) Result[O, E] {
	return Result[O, E]{slot: okSlot, ok: value}
}

func Err[O, E any](value E) Result[O, E] {
	return Result[O, E]{slot: errSlot, err: value}
}

// From builds a Result from two optional payloads. Exactly one of ok and err
// must be non-nil.
func From[O, E any](ok *O, err *E) Result[O, E] {
	switch {
	case ok != nil && err != nil:
		Abort("constructing a result with both an ok and an err value")
	case ok == nil && err == nil:
		Abort("constructing a result without an ok or an err value")
	case ok != nil:
		return Ok[O, E](*ok)
	}
	return Err[O](*err)
}

func (r Result[O, E]) IsOk() bool {
	return r.slot == okSlot
}

func (r Result[O, E]) IsErr() bool {
	return r.slot == errSlot
}

// Value returns the Ok payload and empties the result.
func (r *Result[O, E]) Value() O {
	if !r.IsOk() {
		Abort("getting the value of a result which doesn't have a value")
	}
	return r.takeOk()
}

// ValueOr returns the Ok payload, emptying the result, or def when there is none.
func (r *Result[O, E]) ValueOr(def O) O {
	if !r.IsOk() {
		return def
	}
	return r.takeOk()
}

// Expect is Value with a caller supplied violation message.
func (r *Result[O, E]) Expect(msg string) O {
	if !r.IsOk() {
		Abort(msg)
	}
	return r.takeOk()
}

// Err returns the Err payload and empties the result.
func (r *Result[O, E]) Err() E {
	if !r.IsErr() {
		Abort("getting the error of a result which doesn't have an error")
	}
	return r.takeErr()
}

func (r *Result[O, E]) ErrOr(def E) E {
	if !r.IsErr() {
		return def
	}
	return r.takeErr()
}

func (r *Result[O, E]) ExpectErr(msg string) E {
	if !r.IsErr() {
		Abort(msg)
	}
	return r.takeErr()
}

// String renders Ok{v} or Err{e}. An emptied result renders as "".
func (r Result[O, E]) String() string {
	var sb strings.Builder
	if r.IsOk() {
		fmt.Fprintf(&sb, "Ok{%v}", r.ok)
	}
	if r.IsErr() {
		fmt.Fprintf(&sb, "Err{%v}", r.err)
	}
	return sb.String()
}

func (r *Result[O, E]) takeOk() O {
	v := r.ok
	var zero O
	r.ok = zero
	r.slot = emptied
	return v
}

func (r *Result[O, E]) takeErr() E {
	e := r.err
	var zero E
	r.err = zero
	r.slot = emptied
	return e
}
