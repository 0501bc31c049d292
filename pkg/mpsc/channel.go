package mpsc

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ib-77/aid/pkg/rop"
)

type channel[T any] struct {
	queue *Queue[T]

	mu             sync.Mutex
	senders        int
	receiverClosed bool

	// notify holds at most one pending wake-up for the receiver.
	notify chan struct{}
}

// Sender is the producing end of a channel. Clone it to add producers.
type Sender[T any] struct {
	ch *channel[T]
	// closed is guarded by ch.mu.
	closed bool
}

// Receiver is the single consuming end of a channel.
type Receiver[T any] struct {
	ch *channel[T]
}

// NewChannel returns a connected, unbounded Sender/Receiver pair.
func NewChannel[T any]() (*Sender[T], *Receiver[T]) {
	ch := &channel[T]{
		queue:   New[T](),
		senders: 1,
		notify:  make(chan struct{}, 1),
	}
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

func (c *channel[T]) wake() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

func (c *channel[T]) logger() log.FieldLogger {
	return log.WithField("queue", c.queue.ID())
}

// Send queues value. It fails, handing value back, once the receiver or this
// sender is closed.
func (s *Sender[T]) Send(value T) rop.Result[struct{}, SenderError[T]] {
	s.ch.mu.Lock()
	switch {
	case s.closed:
		s.ch.mu.Unlock()
		return rop.Err[struct{}](SenderError[T]{Value: value, Cause: ErrSender})
	case s.ch.receiverClosed:
		s.ch.mu.Unlock()
		return rop.Err[struct{}](SenderError[T]{Value: value, Cause: ErrReceiver})
	}
	s.ch.queue.Push(value)
	s.ch.mu.Unlock()

	s.ch.wake()
	return rop.Ok[struct{}, SenderError[T]](struct{}{})
}

// Clone returns a new Sender on the same channel. Cloning a closed sender,
// or any sender of a channel whose senders have all closed, yields a closed
// Sender: a disconnected channel stays disconnected.
func (s *Sender[T]) Clone() *Sender[T] {
	s.ch.mu.Lock()
	defer s.ch.mu.Unlock()

	if s.closed || s.ch.senders == 0 {
		return &Sender[T]{ch: s.ch, closed: true}
	}
	s.ch.senders++
	return &Sender[T]{ch: s.ch}
}

// Close disconnects this sender. Closing twice is a no-op.
func (s *Sender[T]) Close() {
	s.ch.mu.Lock()
	if s.closed {
		s.ch.mu.Unlock()
		return
	}
	s.closed = true
	s.ch.senders--
	left := s.ch.senders
	s.ch.mu.Unlock()

	s.ch.logger().WithField("senders", left).Debug("sender closed")
	s.ch.wake()
}

// TryRecv pops the next value without waiting. It reports ErrEmptyQueue while
// senders remain and ErrSender once they are all closed and nothing is left.
func (r *Receiver[T]) TryRecv() rop.Result[T, MpscError] {
	r.ch.mu.Lock()
	closed := r.ch.receiverClosed
	r.ch.mu.Unlock()
	if closed {
		return rop.Err[T](ErrReceiver)
	}

	res := r.ch.queue.Pop()
	if res.IsOk() {
		return res
	}

	r.ch.mu.Lock()
	senders := r.ch.senders
	r.ch.mu.Unlock()
	if senders > 0 {
		return res
	}

	// No sender can push any more; a value queued before the last close
	// is still delivered.
	if res = r.ch.queue.Pop(); res.IsOk() {
		return res
	}
	return rop.Err[T](ErrSender)
}

// Recv waits for the next value. It returns Err(ErrSender) once every sender
// is closed and the queue is drained, or ctx.Err() if ctx ends first.
func (r *Receiver[T]) Recv(ctx context.Context) rop.Result[T, error] {
	for {
		res := r.TryRecv()
		if res.IsOk() {
			return rop.Ok[T, error](res.Value())
		}
		if cause := res.Err(); cause != ErrEmptyQueue {
			return rop.Err[T, error](cause)
		}

		select {
		case <-ctx.Done():
			return rop.Err[T](ctx.Err())
		case <-r.ch.notify:
		}
	}
}

// Close disconnects the receiver. Later sends fail and values still queued
// are dropped with the channel.
func (r *Receiver[T]) Close() {
	r.ch.mu.Lock()
	defer r.ch.mu.Unlock()

	if r.ch.receiverClosed {
		return
	}
	r.ch.receiverClosed = true
	r.ch.logger().WithField("pending", r.ch.queue.Len()).Debug("receiver closed")
}
