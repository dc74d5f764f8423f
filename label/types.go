// Package label defines the algorithm selector, sentinel errors, and the
// dispatch entry point for connected-component labeling.
package label

import (
	"errors"
	"fmt"

	"github.com/Gotman08/labellisation/grid"
)

// Sentinel errors for labeling dispatch.
var (
	// ErrNilGrid indicates a nil input grid was passed.
	ErrNilGrid = errors.New("label: input grid is nil")
	// ErrUnknownMethod indicates an algorithm selector outside the four known cases.
	ErrUnknownMethod = errors.New("label: unknown labeling method")
)

// Method selects one of the four labeling algorithms. The set is closed:
// dispatch is an exhaustive switch over these four cases, not runtime
// polymorphism, so the compiler-visible enumeration stays authoritative.
type Method int

const (
	// MethodTwoPass is the classical raster two-pass algorithm with an
	// equivalence table (provisional labels, then root resolution).
	MethodTwoPass Method = iota
	// MethodUnionFind merges adjacent foreground pixels directly in a
	// disjoint-set forest over pixel indices.
	MethodUnionFind
	// MethodKruskal builds the adjacency edge list, sorts it by weight, and
	// unions edge endpoints — the minimum-spanning-forest formulation.
	MethodKruskal
	// MethodPrim grows each component from a seed pixel by breadth-first
	// frontier expansion.
	MethodPrim
)

// methodNames are the CLI-facing selector strings, aligned with Method values.
var methodNames = [...]string{"two_pass", "union_find", "kruskal", "prim"}

// String returns the canonical selector name of m, or "unknown" for an
// out-of-range value.
func (m Method) String() string {
	if m < MethodTwoPass || m > MethodPrim {
		return "unknown"
	}

	return methodNames[m]
}

// ParseMethod converts a selector string (two_pass | union_find | kruskal |
// prim) to its Method. Returns ErrUnknownMethod for anything else.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if s == name {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Methods returns all four methods in declaration order, for callers that
// run every algorithm over the same input (benchmarks, equivalence checks).
func Methods() []Method {
	return []Method{MethodTwoPass, MethodUnionFind, MethodKruskal, MethodPrim}
}

// Label runs the selected algorithm on g under the given connectivity and
// returns a fresh LabelGrid: 0 for background cells, positive labels for
// foreground cells, equal labels iff same component.
//
// Validates inputs before dispatch: ErrNilGrid for a nil grid,
// grid.ErrInvalidConnectivity for a connectivity other than 4 or 8,
// ErrUnknownMethod for a selector outside the four cases. The algorithms
// themselves assume validated inputs.
//
// Complexity: O(W×H×α) for TwoPass/UnionFind, O(E log E) for Kruskal,
// O(W×H×d) for Prim (d = 4 or 8).
func Label(g *grid.Grid, method Method, conn grid.Connectivity) (*grid.LabelGrid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !conn.Valid() {
		return nil, fmt.Errorf("%w: got %d", grid.ErrInvalidConnectivity, int(conn))
	}
	switch method {
	case MethodTwoPass:
		return TwoPass(g, conn), nil
	case MethodUnionFind:
		return UnionFind(g, conn), nil
	case MethodKruskal:
		return Kruskal(g, conn), nil
	case MethodPrim:
		return Prim(g, conn), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}
