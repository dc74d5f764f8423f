package label

// EquivalenceTable records equivalences between provisional labels minted
// during a raster scan. It is a deliberately simpler union-find than
// dsu.DisjointSet: no rank, and Union always attaches the larger root under
// the smaller, so Find returns the smallest label of each equivalence class.
// That "minimum survives" policy keeps resolved labels monotonic with the
// scan order of each component's first pixel.
//
// Slot 0 is reserved as the background sentinel and is never a valid label.
// The table grows as labels are minted; it is scoped to a single two-pass
// invocation.
type EquivalenceTable struct {
	parent []int32
}

// NewEquivalenceTable creates an empty table holding only the background
// sentinel at slot 0.
// Complexity: O(1).
func NewEquivalenceTable() *EquivalenceTable {
	return &EquivalenceTable{parent: []int32{0}}
}

// NewLabel mints the next provisional label (1-based), initially its own
// root, and returns it.
// Complexity: O(1) amortized.
func (t *EquivalenceTable) NewLabel() int32 {
	l := int32(len(t.parent))
	t.parent = append(t.parent, l)

	return l
}

// Len returns the number of labels minted so far (excluding the sentinel).
// Complexity: O(1).
func (t *EquivalenceTable) Len() int { return len(t.parent) - 1 }

// Find returns the smallest label equivalent to l, applying full path
// compression. For l ≤ 0 or beyond the minted range it returns the
// background sentinel 0 — unreachable for validly minted labels.
// Path compression is iterative: label chains can be as long as the number
// of provisional labels.
// Complexity: amortized near-O(1).
func (t *EquivalenceTable) Find(l int32) int32 {
	if l <= 0 || int(l) >= len(t.parent) {
		return 0
	}
	// First sweep: locate the class minimum (the root).
	root := l
	for t.parent[root] != root {
		root = t.parent[root]
	}
	// Second sweep: relink every visited label to the root.
	for t.parent[l] != root {
		t.parent[l], l = root, t.parent[l]
	}

	return root
}

// Union records that a and b label the same component. No-op if they are
// already equivalent; otherwise the larger root is attached under the
// smaller one, so the class minimum always survives as the representative.
// Complexity: amortized near-O(1).
func (t *EquivalenceTable) Union(a, b int32) {
	ra, rb := t.Find(a), t.Find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		t.parent[rb] = ra
	} else {
		t.parent[ra] = rb
	}
}
