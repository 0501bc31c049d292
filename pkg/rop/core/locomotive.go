package core

import (
	"context"
	"sync"
)

type CancellationHandlers[In any] struct {
	// OnCancel receives the input channel once the context ends.
	OnCancel func(ctx context.Context, inputCh <-chan In)
	// OnCancelUnprocessed receives a value read from inputCh that was not
	// handled because the context ended.
	OnCancelUnprocessed func(ctx context.Context, unprocessed In)
}

// Locomotive reads inputCh until it is closed, the context ends, or handle
// returns false. It calls wg.Done on exit.
func Locomotive[In any](ctx context.Context, inputCh <-chan In,
	handle func(ctx context.Context, in In) bool,
	handlers CancellationHandlers[In], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			}

			if !handle(ctx, in) {
				return
			}
		}
	}
}

// Lines starts n Locomotives over inputCh and returns a channel closed once
// they have all stopped.
func Lines[In any](ctx context.Context, inputCh <-chan In, n int,
	handle func(ctx context.Context, in In) bool,
	handlers CancellationHandlers[In]) <-chan struct{} {

	done := make(chan struct{})
	wg := &sync.WaitGroup{}

	for range max(n, 1) {
		wg.Add(1)
		go Locomotive(ctx, inputCh, handle, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	return done
}
