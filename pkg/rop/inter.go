package rop

// Source yields one value per call and reports exhaustion through Err.
type Source[T, E any] interface {
	// Pop returns the next value, or an Err when nothing is available
	Pop() Result[T, E]
}

// Sink accepts values one at a time.
type Sink[T any] interface {
	Push(value T)
}
