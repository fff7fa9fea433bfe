package pqueue

import "golang.org/x/exp/constraints"

// Queue is a min-priority queue over distinct elements of type E with
// priorities of type P. The zero value is not usable; create queues with New.
//
// Invariants, holding after every exported call:
//
//   - heap[(i-1)/2].priority <= heap[i].priority for every slot i > 0.
//   - index[heap[i].element] == i for every slot, and index has no other keys.
//
// Floating-point priorities must not be NaN.
type Queue[E comparable, P constraints.Ordered] struct {
	heap  []entry[E, P] // binary min-heap, root at slot 0
	index map[E]int     // element → slot in heap
}

// New returns an empty Queue configured by opts.
func New[E comparable, P constraints.Ordered](opts ...Option) *Queue[E, P] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[E, P]{
		heap:  make([]entry[E, P], 0, cfg.Capacity),
		index: make(map[E]int, cfg.Capacity),
	}
}

// Len returns the number of queued elements.
func (q *Queue[E, P]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[E, P]) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether e is currently queued.
func (q *Queue[E, P]) Contains(e E) bool {
	_, ok := q.index[e]
	return ok
}

// Priority returns the current priority of e and whether e is queued.
func (q *Queue[E, P]) Priority(e E) (P, bool) {
	i, ok := q.index[e]
	if !ok {
		var zero P
		return zero, false
	}

	return q.heap[i].priority, true
}

// Push inserts e with priority p. The element is appended at the end of the
// heap and sifted towards the root.
// Returns ErrDuplicateElement if e is already queued.
func (q *Queue[E, P]) Push(e E, p P) error {
	if _, ok := q.index[e]; ok {
		return ErrDuplicateElement
	}

	last := len(q.heap)
	q.heap = append(q.heap, entry[E, P]{element: e, priority: p})
	q.index[e] = last
	q.up(last)

	return nil
}

// Pop removes and returns the element with the smallest priority.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[E, P]) Pop() (E, error) {
	e, _, err := q.PopEntry()
	return e, err
}

// PopEntry is Pop that also returns the priority the element had.
func (q *Queue[E, P]) PopEntry() (E, P, error) {
	n := len(q.heap)
	if n == 0 {
		var (
			zeroE E
			zeroP P
		)
		return zeroE, zeroP, ErrEmptyQueue
	}

	// 1) Save the root and move the last slot into its place.
	top := q.heap[0]
	last := n - 1
	q.heap[0] = q.heap[last]
	q.index[q.heap[0].element] = 0

	// 2) Shrink, dropping the vacated slot so it holds no reference.
	q.heap[last] = entry[E, P]{}
	q.heap = q.heap[:last]
	delete(q.index, top.element)

	// 3) Restore heap order below the root.
	if last > 0 {
		q.down(0)
	}

	return top.element, top.priority, nil
}

// Peek returns the element with the smallest priority without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[E, P]) Peek() (E, P, error) {
	if len(q.heap) == 0 {
		var (
			zeroE E
			zeroP P
		)
		return zeroE, zeroP, ErrEmptyQueue
	}

	return q.heap[0].element, q.heap[0].priority, nil
}

// ChangePriority sets the priority of a queued element to p and moves it to
// its new place: towards the root if p beats its parent, otherwise towards
// the leaves. An unchanged priority moves nothing.
// Returns ErrUnknownElement, leaving the queue untouched, if e is not queued.
func (q *Queue[E, P]) ChangePriority(e E, p P) error {
	i, ok := q.index[e]
	if !ok {
		return ErrUnknownElement
	}

	q.heap[i].priority = p
	if !q.up(i) {
		q.down(i)
	}

	return nil
}

// Purge removes every element.
func (q *Queue[E, P]) Purge() {
	clear(q.heap)
	q.heap = q.heap[:0]
	clear(q.index)
}

// up sifts slot i towards the root while it is strictly smaller than its
// parent. It reports whether the element moved.
func (q *Queue[E, P]) up(i int) bool {
	start := i
	for i > 0 {
		parent := (i - 1) / 2
		if !(q.heap[i].priority < q.heap[parent].priority) {
			break
		}
		q.swap(i, parent)
		i = parent
	}

	return i != start
}

// down sifts slot i towards the leaves, always trading places with the
// smaller child (the left one on ties) while that child is strictly smaller.
func (q *Queue[E, P]) down(i int) {
	n := len(q.heap)
	for {
		left := 2*i + 1
		if left >= n || left < 0 { // left < 0 after int overflow
			return
		}

		child := left
		if right := left + 1; right < n && q.heap[right].priority < q.heap[left].priority {
			child = right
		}
		if !(q.heap[child].priority < q.heap[i].priority) {
			return
		}

		q.swap(i, child)
		i = child
	}
}

// swap exchanges two slots and records their new positions in the index.
func (q *Queue[E, P]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.index[q.heap[i].element] = i
	q.index[q.heap[j].element] = j
}
