package pqueue

import "errors"

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue indicates a removal or peek on a queue with no elements.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrUnknownElement indicates an operation referenced an element that is not queued.
	ErrUnknownElement = errors.New("pqueue: element not in queue")

	// ErrDuplicateElement indicates a Push of an element that is already queued.
	ErrDuplicateElement = errors.New("pqueue: element already in queue")
)

// entry is one heap slot: the element and its current priority.
type entry[E comparable, P any] struct {
	element  E
	priority P
}

// Options configures a new Queue.
type Options struct {
	// Capacity preallocates room for this many elements. Zero means no preallocation.
	Capacity int
}

// Option represents a functional option for configuring a Queue.
type Option func(*Options)

// WithCapacity preallocates the heap and the position index for n elements.
// Negative values are treated as zero.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Capacity = n
	}
}

// DefaultOptions returns Options with no preallocation.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
