package mpsc

// MpscError describes why a queue or channel operation produced no value.
type MpscError int

const (
	// ErrSender is returned by a receive once every sender has closed and
	// the queue is drained.
	ErrSender MpscError = iota
	// ErrReceiver means the receiving side is gone.
	ErrReceiver
	// ErrEmptyQueue is returned by Pop and TryRecv when nothing is queued.
	ErrEmptyQueue
)

func (e MpscError) Error() string {
	switch e {
	case ErrSender:
		return "sender disconnected"
	case ErrReceiver:
		return "receiver disconnected"
	case ErrEmptyQueue:
		return "empty queue"
	}
	return "unknown mpsc error"
}

func (e MpscError) String() string {
	return e.Error()
}

// SenderError hands an undelivered value back to the caller of Send.
type SenderError[T any] struct {
	Value T
	Cause MpscError
}

func (e SenderError[T]) Error() string {
	return "send failed: " + e.Cause.Error()
}

func (e SenderError[T]) Unwrap() error {
	return e.Cause
}
