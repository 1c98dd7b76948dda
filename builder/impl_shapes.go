// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_shapes.go: deterministic graph shapes.
//
// Contract:
//   • Nodes are 0..n-1; Grid uses row-major IDs r*cols+c.
//   • Edges are emitted in a fixed, documented order, which fixes the
//     neighbor order graph.Build produces and so the traversal order.
//   • Parameters are validated before anything is emitted.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/graph"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodGrid     = "Grid"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4 // rim cycle of n-1 must have at least 3 nodes
	minGridDim       = 1

	hubID = 0
)

func tooFew(method string, got, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
}

// Path emits i-(i+1) for i ascending. A one-node path has no edges.
func Path(n int) Constructor {
	return func(dst []graph.Edge, _ builderConfig) ([]graph.Edge, error) {
		if n < minPathNodes {
			return nil, tooFew(methodPath, n, minPathNodes)
		}
		for i := 0; i+1 < n; i++ {
			dst = append(dst, graph.Edge{U: i, V: i + 1})
		}
		return dst, nil
	}
}

// Cycle emits i-((i+1)%n) for i ascending.
func Cycle(n int) Constructor {
	return func(dst []graph.Edge, _ builderConfig) ([]graph.Edge, error) {
		if n < minCycleNodes {
			return nil, tooFew(methodCycle, n, minCycleNodes)
		}
		for i := 0; i < n; i++ {
			dst = append(dst, graph.Edge{U: i, V: (i + 1) % n})
		}
		return dst, nil
	}
}

// Complete emits every pair i-j with i < j, i then j ascending.
func Complete(n int) Constructor {
	return func(dst []graph.Edge, _ builderConfig) ([]graph.Edge, error) {
		if n < minCompleteNodes {
			return nil, tooFew(methodComplete, n, minCompleteNodes)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dst = append(dst, graph.Edge{U: i, V: j})
			}
		}
		return dst, nil
	}
}

// Star connects hub 0 to each leaf 1..n-1.
func Star(n int) Constructor {
	return func(dst []graph.Edge, _ builderConfig) ([]graph.Edge, error) {
		if n < minStarNodes {
			return nil, tooFew(methodStar, n, minStarNodes)
		}
		for i := 1; i < n; i++ {
			dst = append(dst, graph.Edge{U: hubID, V: i})
		}
		return dst, nil
	}
}

// Wheel is a rim cycle over 1..n-1 followed by spokes from hub 0.
func Wheel(n int) Constructor {
	return func(dst []graph.Edge, _ builderConfig) ([]graph.Edge, error) {
		if n < minWheelNodes {
			return nil, tooFew(methodWheel, n, minWheelNodes)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			dst = append(dst, graph.Edge{U: 1 + i, V: 1 + (i+1)%rim})
		}
		for i := 1; i < n; i++ {
			dst = append(dst, graph.Edge{U: hubID, V: i})
		}
		return dst, nil
	}
}

// Grid is a rows x cols lattice; for each cell in row-major order it
// emits the right edge, then the bottom edge, where they exist.
func Grid(rows, cols int) Constructor {
	return func(dst []graph.Edge, _ builderConfig) ([]graph.Edge, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: %dx%d below %dx%d: %w", methodGrid, rows, cols, minGridDim, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					dst = append(dst, graph.Edge{U: id(r, c), V: id(r, c+1)})
				}
				if r+1 < rows {
					dst = append(dst, graph.Edge{U: id(r, c), V: id(r+1, c)})
				}
			}
		}
		return dst, nil
	}
}
