package lite

import (
	"context"

	"github.com/ib-77/aid/pkg/rop"
	"github.com/ib-77/aid/pkg/rop/core"
	"github.com/ib-77/aid/pkg/rop/solo"
)

// Engine turns one input result into one output result.
type Engine[In, Out any] func(ctx context.Context, input In) Out

// Run applies engine to every value of inputCh using lines parallel workers.
// The output channel is closed once inputCh is drained or ctx ends. With more
// than one line, output order is not guaranteed.
func Run[In, Out any](ctx context.Context, inputCh <-chan In, engine Engine[In, Out], lines int) <-chan Out {
	out := make(chan Out)

	deliver := func(ctx context.Context, in In) bool {
		select {
		case out <- engine(ctx, in):
			return true
		case <-ctx.Done():
			return false
		}
	}

	done := core.Lines(ctx, inputCh, lines, deliver, core.CancellationHandlers[In]{})

	go func() {
		<-done
		close(out)
	}()

	return out
}

// Turnout runs a Result-to-Result stage.
func Turnout[O, E, U, F any](ctx context.Context, inputCh <-chan rop.Result[O, E],
	engine Engine[rop.Result[O, E], rop.Result[U, F]], lines int) <-chan rop.Result[U, F] {
	return Run(ctx, inputCh, engine, lines)
}

func Map[O, E, U any](onOk func(ctx context.Context, v O) U) Engine[rop.Result[O, E], rop.Result[U, E]] {
	return func(ctx context.Context, input rop.Result[O, E]) rop.Result[U, E] {
		return solo.Map(input, func(v O) U { return onOk(ctx, v) })
	}
}

func MapErr[O, E, F any](onErr func(ctx context.Context, e E) F) Engine[rop.Result[O, E], rop.Result[O, F]] {
	return func(ctx context.Context, input rop.Result[O, E]) rop.Result[O, F] {
		return solo.MapErr(input, func(e E) F { return onErr(ctx, e) })
	}
}

func AndThen[O, E, U any](onOk func(ctx context.Context, v O) rop.Result[U, E]) Engine[rop.Result[O, E], rop.Result[U, E]] {
	return func(ctx context.Context, input rop.Result[O, E]) rop.Result[U, E] {
		return solo.AndThen(input, func(v O) rop.Result[U, E] { return onOk(ctx, v) })
	}
}

func OrElse[O, E, F any](onErr func(ctx context.Context, e E) rop.Result[O, F]) Engine[rop.Result[O, E], rop.Result[O, F]] {
	return func(ctx context.Context, input rop.Result[O, E]) rop.Result[O, F] {
		return solo.OrElse(input, func(e E) rop.Result[O, F] { return onErr(ctx, e) })
	}
}

func Validate[O, E any](check func(ctx context.Context, v O) (bool, E)) Engine[rop.Result[O, E], rop.Result[O, E]] {
	return func(ctx context.Context, input rop.Result[O, E]) rop.Result[O, E] {
		return solo.Validate(input, func(v O) (bool, E) { return check(ctx, v) })
	}
}

func Tee[O, E any](sideEffect func(ctx context.Context, v O)) Engine[rop.Result[O, E], rop.Result[O, E]] {
	return func(ctx context.Context, input rop.Result[O, E]) rop.Result[O, E] {
		return solo.Tee(input, func(v O) { sideEffect(ctx, v) })
	}
}

type FinallyHandlers[O, E, Out any] struct {
	OnOk  func(ctx context.Context, v O) Out
	OnErr func(ctx context.Context, e E) Out
}

// Finally collapses every result of inputCh through handlers, one line.
func Finally[O, E, Out any](ctx context.Context, inputCh <-chan rop.Result[O, E],
	handlers FinallyHandlers[O, E, Out]) <-chan Out {
	var engine Engine[rop.Result[O, E], Out] = func(ctx context.Context, input rop.Result[O, E]) Out {
		return solo.MapOrElse(input,
			func(e E) Out { return handlers.OnErr(ctx, e) },
			func(v O) Out { return handlers.OnOk(ctx, v) })
	}
	return Run(ctx, inputCh, engine, 1)
}
