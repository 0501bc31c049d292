package mpsc

import (
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ib-77/aid/pkg/rop"
)

// Queue is an unbounded FIFO guarded by a single mutex.
type Queue[T any] struct {
	id    uuid.UUID
	mu    sync.Mutex
	items []T
}

func New[T any]() *Queue[T] {
	q := &Queue[T]{id: uuid.New()}
	log.WithField("queue", q.id).Debug("queue created")
	return q
}

// ID identifies the queue in log output.
func (q *Queue[T]) ID() uuid.UUID {
	return q.id
}

// Push appends value at the tail.
func (q *Queue[T]) Push(value T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, value)
}

// Pop removes the head. It never waits: an empty queue yields
// Err(ErrEmptyQueue).
func (q *Queue[T]) Pop() rop.Result[T, MpscError] {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return rop.Err[T](ErrEmptyQueue)
	}

	head := q.items[0]
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}

	return rop.Ok[T, MpscError](head)
}

// Len returns the number of queued elements at the time of the call.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
