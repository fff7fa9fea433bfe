package core

import "sort"

// Nodes returns every node of adj in ascending order: all keys plus every
// edge target that has no key of its own.
// Complexity: O((V + E) + V log V)
func (adj Adjacency) Nodes() []int {
	seen := make(map[int]struct{}, len(adj))
	for u, nbrs := range adj {
		seen[u] = struct{}{}
		for v := range nbrs {
			seen[v] = struct{}{}
		}
	}

	return sortedKeys(seen)
}

// Has reports whether id is a key of adj or the target of some edge.
func (adj Adjacency) Has(id int) bool {
	if _, ok := adj[id]; ok {
		return true
	}
	for _, nbrs := range adj {
		if _, ok := nbrs[id]; ok {
			return true
		}
	}

	return false
}

// Neighbors returns the targets of id's outgoing edges in ascending order.
// An unknown id has no neighbours.
func (adj Adjacency) Neighbors(id int) []int {
	return sortedKeys(adj[id])
}

// EdgeCount returns the number of stored u→v entries.
func (adj Adjacency) EdgeCount() int {
	n := 0
	for _, nbrs := range adj {
		n += len(nbrs)
	}

	return n
}

// Symmetric reports whether every u→v entry has a v→u entry of equal weight.
// Undirected input is expected to satisfy this.
func (adj Adjacency) Symmetric() bool {
	for u, nbrs := range adj {
		for v, w := range nbrs {
			back, ok := adj[v][u]
			if !ok || back != w {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of adj.
func (adj Adjacency) Clone() Adjacency {
	if adj == nil {
		return nil
	}
	out := make(Adjacency, len(adj))
	for u, nbrs := range adj {
		cp := make(map[int]int64, len(nbrs))
		for v, w := range nbrs {
			cp[v] = w
		}
		out[u] = cp
	}

	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
