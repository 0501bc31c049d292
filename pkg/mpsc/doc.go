// Package mpsc provides a mutex-guarded, unbounded FIFO queue whose Pop
// reports emptiness through rop.Result instead of blocking, and a
// Sender/Receiver channel built on it.
//
// # Queue
//
//	q := mpsc.New[int]()
//	q.Push(1)
//	r := q.Pop() // Ok{1}
//	r = q.Pop()  // Err{empty queue}
//
// Any number of goroutines may Push and Pop concurrently; a single lock
// orders every critical section, so elements are observed in the order their
// pushes acquired it. Nothing enforces the single consumer implied by the
// name.
//
// # Channel
//
//	tx, rx := mpsc.NewChannel[string]()
//	tx2 := tx.Clone()
//	tx.Send("a")
//	tx.Close()
//	tx2.Close()
//	rx.TryRecv() // Ok{a}
//	rx.TryRecv() // Err{sender disconnected}
//
// Receiver.Recv waits for a value, for every sender to close, or for the
// context to end.
package mpsc
