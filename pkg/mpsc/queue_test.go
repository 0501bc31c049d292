package mpsc

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/aid/pkg/rop"
	"github.com/ib-77/aid/pkg/rop/solo"
)

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	assert.Equal(t, rop.Ok[int, MpscError](1), q.Pop())
	assert.Equal(t, rop.Ok[int, MpscError](2), q.Pop())
	assert.Equal(t, rop.Ok[int, MpscError](3), q.Pop())
	assert.Equal(t, rop.Err[int](ErrEmptyQueue), q.Pop())
}

func TestQueue_PopOnEmptyDoesNotBlock(t *testing.T) {
	t.Parallel()

	q := New[string]()
	for range 3 {
		r := q.Pop()
		require.True(t, r.IsErr())
		assert.True(t, errors.Is(r.Err(), ErrEmptyQueue))
	}
	assert.Zero(t, q.Len())
}

func TestQueue_InterleavedPushPop(t *testing.T) {
	t.Parallel()

	q := New[int]()
	q.Push(1)
	assert.True(t, solo.Contains(q.Pop(), 1))
	q.Push(2)
	q.Push(3)
	assert.Equal(t, 2, q.Len())
	assert.True(t, solo.Contains(q.Pop(), 2))
	q.Push(4)
	assert.True(t, solo.Contains(q.Pop(), 3))
	assert.True(t, solo.Contains(q.Pop(), 4))
	assert.True(t, solo.ContainsErr(q.Pop(), ErrEmptyQueue))
}

func TestQueue_ZeroValueUsable(t *testing.T) {
	t.Parallel()

	var q Queue[int]
	q.Push(9)
	assert.True(t, solo.Contains(q.Pop(), 9))
	assert.Equal(t, uuid.Nil, q.ID())
}

func TestQueue_IDsDiffer(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, New[int]().ID(), New[int]().ID())
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	t.Parallel()

	const producers = 8
	const perProducer = 1000

	q := New[int]()
	wg := &sync.WaitGroup{}
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Push(p*perProducer + i)
			}
		}()
	}
	wg.Wait()

	seen := make(map[int]bool, producers*perProducer)
	lastPerProducer := make(map[int]int)
	for {
		r := q.Pop()
		if r.IsErr() {
			require.Equal(t, ErrEmptyQueue, r.Err())
			break
		}
		v := r.Value()
		require.False(t, seen[v], "value %d popped twice", v)
		seen[v] = true

		// each producer's own pushes keep their order
		p := v / perProducer
		if last, ok := lastPerProducer[p]; ok {
			require.Greater(t, v, last)
		}
		lastPerProducer[p] = v
	}

	assert.Len(t, seen, producers*perProducer)
}

func TestQueue_ConcurrentPushAndPop(t *testing.T) {
	t.Parallel()

	const producers = 4
	const perProducer = 500

	q := New[int]()
	wg := &sync.WaitGroup{}
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Push(i)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	popped := 0
	for {
		if solo.MapOr(q.Pop(), false, func(int) bool { return true }) {
			popped++
			continue
		}
		select {
		case <-done:
			for q.Pop().IsOk() {
				popped++
			}
			assert.Equal(t, producers*perProducer, popped)
			return
		default:
		}
	}
}

func TestMpscError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty queue", ErrEmptyQueue.Error())
	assert.Equal(t, "sender disconnected", ErrSender.String())
	assert.Equal(t, "receiver disconnected", ErrReceiver.Error())
	assert.Equal(t, "unknown mpsc error", MpscError(42).Error())

	var err error = SenderError[int]{Value: 5, Cause: ErrReceiver}
	assert.ErrorIs(t, err, ErrReceiver)
	assert.EqualError(t, err, "send failed: receiver disconnected")
}
