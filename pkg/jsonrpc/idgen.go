package jsonrpc

import "sync/atomic"

// Generator issues request identifiers. Implementations must never hand the
// same id to two callers, no matter how many goroutines ask concurrently.
type Generator interface {
	Next() uint64
}

// Sequence is an atomic Generator. Ids are strictly increasing and start at 1.
type Sequence struct {
	counter atomic.Uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next id in the sequence.
func (seq *Sequence) Next() uint64 {
	return seq.counter.Add(1)
}

// defaultSequence backs NewRequest. One per process, so every request built
// without an explicit Generator gets a process-unique id.
var defaultSequence = NewSequence()
