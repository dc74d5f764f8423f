// Package dsu implements a disjoint-set forest (union-find) over dense
// integer indices, with union by rank and iterative path compression.
//
// What:
//
//   - New(n) creates n singleton sets over [0,n).
//   - Find(x) returns the canonical representative of x's set.
//   - Union(x, y) merges two sets, reporting whether a merge occurred.
//   - Count() tracks the number of live sets.
//
// Why:
//
//   - Connected-component labeling over pixel indices reduces to set union:
//     every foreground adjacency merges two pixel sets, and the surviving
//     representatives identify the components.
//   - Path compression is iterative (two sweeps up the parent chain), not
//     recursive: pixel counts can exceed any safe call-stack depth.
//
// Complexity:
//
//   - New: O(n). Find/Union: O(α(n)) amortized, α = inverse Ackermann.
//
// Find and Union panic on indices outside [0,n): an out-of-range element is
// a programming defect, not a recoverable condition.
package dsu

// DisjointSet maintains a partition of {0,…,n-1}. Two elements are in the
// same set iff Find returns the same representative for both. Each instance
// is scoped to a single algorithm invocation; instances never share state.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// New creates a DisjointSet of n singleton sets, each element its own
// parent with rank 0.
// Complexity: O(n) time and memory.
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements in the forest.
// Complexity: O(1).
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of live (disjoint) sets.
// Complexity: O(1).
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of x's set, applying full path
// compression: every node on the walk is relinked directly to the root.
// Panics if x is outside [0,Len()).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) int {
	if x < 0 || x >= len(d.parent) {
		panic("dsu: element out of range")
	}
	// First sweep: locate the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second sweep: relink every visited node to the root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// Union merges the sets containing x and y. Returns false if they were
// already in the same set. On a merge the lower-rank root is attached under
// the higher-rank root; on a rank tie, y's root goes under x's root and the
// surviving root's rank increments. Panics if x or y is out of range.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		// Equal ranks: attach ry under rx and bump rx's rank.
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true
}

// Same reports whether x and y currently belong to the same set.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Same(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
