package core

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ib-77/aid/pkg/rop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsResults[T, E any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan rop.Result[T, E] {
	in := make(chan rop.Result[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rop.Ok[T, E](v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs[T](ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func ToChanManyResultsWithHandlers[T, E any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan rop.Result[T, E] {
	return ToChanFromArgsResults[T, E](ctx, handlers, values...)
}

func ToChanManyResults[T, E any](ctx context.Context, values []T) <-chan rop.Result[T, E] {
	return ToChanFromArgsResults[T, E](ctx, ToChanHandlers[T]{}, values...)
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// Drain pops src until it reports an Err and returns the values taken
// together with that error.
func Drain[T, E any](src rop.Source[T, E]) ([]T, E) {
	values := make([]T, 0)
	for {
		r := src.Pop()
		if !r.IsOk() {
			return values, r.Err()
		}
		values = append(values, r.Value())
	}
}

// Feed pushes every value read from inputCh into sink using
// GetWorkerMaxCount(ctx, 1) parallel lines and returns how many were pushed.
//
// When ctx ends early and IsProcessRemainingEnabled(ctx, false) holds, the
// values still arriving on inputCh are pushed as well; Feed then returns
// only after inputCh is closed.
func Feed[T any](ctx context.Context, inputCh <-chan T, sink rop.Sink[T]) int {
	var pushed atomic.Int64

	push := func(_ context.Context, v T) bool {
		sink.Push(v)
		pushed.Add(1)
		return true
	}

	handlers := CancellationHandlers[T]{}
	if IsProcessRemainingEnabled(ctx, false) {
		handlers.OnCancelUnprocessed = func(ctx context.Context, v T) {
			push(ctx, v)
		}
		handlers.OnCancel = func(ctx context.Context, rest <-chan T) {
			for v := range rest {
				push(ctx, v)
			}
		}
	}

	<-Lines(ctx, inputCh, GetWorkerMaxCount(ctx, 1), push, handlers)
	return int(pushed.Load())
}
