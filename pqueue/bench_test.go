package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortpath/pqueue"
)

// BenchmarkPushPop measures filling a queue with N random priorities and draining it.
func BenchmarkPushPop(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	prios := make([]int64, N)
	for i := range prios {
		prios[i] = rng.Int63n(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New[int, int64](pqueue.WithCapacity(N))
		for e, p := range prios {
			_ = q.Push(e, p)
		}
		for !q.IsEmpty() {
			_, _ = q.Pop()
		}
	}
}

// BenchmarkChangePriority measures decrease-key on a full queue, the hot path of Dijkstra.
func BenchmarkChangePriority(b *testing.B) {
	const N = 10000
	q := pqueue.New[int, int64](pqueue.WithCapacity(N))
	for e := 0; e < N; e++ {
		_ = q.Push(e, int64(N+e))
	}
	rng := rand.New(rand.NewSource(2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.ChangePriority(rng.Intn(N), rng.Int63n(2*N))
	}
}
