// Package pqueue provides an indexed binary min-heap: a priority queue that
// also tracks the heap slot of every element it holds.
//
// Overview:
//
//   - Elements are kept in a contiguous slice ordered as a binary min-heap
//     (slot i has children 2i+1 and 2i+2, parent (i-1)/2).
//   - A map from element to slot is updated on every move, so membership tests
//     are O(1) and ChangePriority can locate an element without a scan.
//   - Element identity is plain Go equality on a comparable type; no hashing
//     of element values is involved.
//
// Complexity:
//
//   - Push, Pop, ChangePriority: O(log n)
//   - Contains, Len, IsEmpty, Peek, Priority: O(1)
//   - Purge: O(1) (storage is released to the garbage collector)
//   - Space: O(n)
//
// Error handling (sentinel errors):
//
//   - ErrEmptyQueue:       Pop, PopEntry or Peek on an empty queue.
//   - ErrUnknownElement:   ChangePriority on an element that is not queued.
//   - ErrDuplicateElement: Push of an element that is already queued.
//
// Failed calls never modify the queue.
//
// Example:
//
//	q := pqueue.New[string, int]()
//	_ = q.Push("a", 5)
//	_ = q.Push("b", 3)
//	_ = q.ChangePriority("a", 1)
//	top, _ := q.Pop() // "a"
//
// A Queue is not safe for concurrent use.
package pqueue
