package pqueue

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CheckInvariants verifies the heap order and the agreement between the heap
// and its position index. It exists for tests only.
func CheckInvariants[E comparable, P constraints.Ordered](q *Queue[E, P]) error {
	if len(q.heap) != len(q.index) {
		return fmt.Errorf("size mismatch: heap=%d index=%d", len(q.heap), len(q.index))
	}
	for i, slot := range q.heap {
		if pos, ok := q.index[slot.element]; !ok || pos != i {
			return fmt.Errorf("index of %v is %d (present=%t), heap slot is %d", slot.element, pos, ok, i)
		}
		if i == 0 {
			continue
		}
		if parent := q.heap[(i-1)/2]; slot.priority < parent.priority {
			return fmt.Errorf("slot %d priority %v below parent priority %v", i, slot.priority, parent.priority)
		}
	}

	return nil
}

// Priorities returns the priorities in heap-slot order.
func Priorities[E comparable, P constraints.Ordered](q *Queue[E, P]) []P {
	out := make([]P, len(q.heap))
	for i, slot := range q.heap {
		out[i] = slot.priority
	}

	return out
}
