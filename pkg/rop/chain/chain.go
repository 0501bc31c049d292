package chain

import (
	"github.com/ib-77/aid/pkg/rop"
	"github.com/ib-77/aid/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[O, E any] struct {
	result rop.Result[O, E]
}

// Start creates a new chain from a rop.Result
func Start[O, E any](result rop.Result[O, E]) *Chain[O, E] {
	return &Chain[O, E]{result: result}
}

// FromValue creates a new chain from an Ok value
func FromValue[O, E any](value O) *Chain[O, E] {
	return &Chain[O, E]{result: rop.Ok[O, E](value)}
}

// Result returns the underlying rop.Result
func (c *Chain[O, E]) Result() rop.Result[O, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[O, E, U any](c *Chain[O, E], onOk func(O) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{result: solo.AndThen(c.result, onOk)}
}

// Map chains a pure transformation function
func Map[O, E, U any](c *Chain[O, E], onOk func(O) U) *Chain[U, E] {
	return &Chain[U, E]{result: solo.Map(c.result, onOk)}
}

// ThenTry chains a function returning a Go (value, error) pair
func ThenTry[O, U any](c *Chain[O, error], onOk func(O) (U, error)) *Chain[U, error] {
	return Then(c, func(v O) rop.Result[U, error] {
		u, err := onOk(v)
		return solo.Try(u, err)
	})
}

// MapErr chains a transformation of the error payload
func MapErr[O, E, F any](c *Chain[O, E], onErr func(E) F) *Chain[O, F] {
	return &Chain[O, F]{result: solo.MapErr(c.result, onErr)}
}

// Then is the same-type form of the package level Then.
func (c *Chain[O, E]) Then(onOk func(O) rop.Result[O, E]) *Chain[O, E] {
	return Then(c, onOk)
}

func (c *Chain[O, E]) Map(onOk func(O) O) *Chain[O, E] {
	return Map(c, onOk)
}

func (c *Chain[O, E]) MapErr(onErr func(E) E) *Chain[O, E] {
	return MapErr(c, onErr)
}

// Recover replaces an Err with the result of onErr; an Ok passes through.
func (c *Chain[O, E]) Recover(onErr func(E) rop.Result[O, E]) *Chain[O, E] {
	return &Chain[O, E]{result: solo.OrElse(c.result, onErr)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[O, E]) Ensure(onOk func(O)) *Chain[O, E] {
	return &Chain[O, E]{result: solo.Tee(c.result, onOk)}
}

// OnErr performs a side effect on the error without changing the result
func (c *Chain[O, E]) OnErr(onErr func(E)) *Chain[O, E] {
	return &Chain[O, E]{result: solo.DoubleTee(c.result, func(O) {}, onErr)}
}

// RepeatUntil applies onOk until the chain turns Err or until reports true
// for the latest value. onOk runs at least once on an Ok chain.
func (c *Chain[O, E]) RepeatUntil(onOk func(O) rop.Result[O, E], until func(O) bool) *Chain[O, E] {
	if !c.result.IsOk() {
		return c
	}

	for {
		c = c.Then(onOk)

		if !c.result.IsOk() || solo.MapOr(c.result, true, until) {
			return c
		}
	}
}

// While applies onOk for as long as the chain is Ok and while reports true.
// Unlike RepeatUntil it checks first, so onOk may never run.
func (c *Chain[O, E]) While(onOk func(O) rop.Result[O, E], while func(O) bool) *Chain[O, E] {
	for c.result.IsOk() && solo.MapOr(c.result, false, while) {
		c = c.Then(onOk)
	}
	return c
}

// Finally collapses the chain into a final value using solo.MapOrElse
func Finally[O, E, U any](c *Chain[O, E], onOk func(O) U, onErr func(E) U) U {
	return solo.MapOrElse(c.result, onErr, onOk)
}
