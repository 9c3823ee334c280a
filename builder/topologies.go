// SPDX-License-Identifier: MIT
// Package: routegraph/builder
//
// topologies.go: deterministic and seeded network constructors.
//
// Determinism:
//   • Endpoint names come from cfg.idFn in ascending index order.
//   • Edge order is documented per constructor and never depends on map order.
//   • RandomSparse draws one Bernoulli trial per unordered pair, i asc then j asc.

package builder

import "fmt"

// Method tags and minima.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathVertices   = 2
	minCycleVertices  = 3
	minStarVertices   = 2
	minGridDim        = 1
	minCompleteNodes  = 2
	minSparseVertices = 2
)

// Path emits 0–1, 1–2, …, (n-2)–(n-1).
func Path(n int) Constructor {
	return func(cfg builderConfig, emit func(a, b string)) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			emit(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle emits Path(n) plus the closing (n-1)–0 connection.
func Cycle(n int) Constructor {
	return func(cfg builderConfig, emit func(a, b string)) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			emit(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Star emits 0–i for i in 1..n-1; index 0 is the hub.
func Star(n int) Constructor {
	return func(cfg builderConfig, emit func(a, b string)) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			emit(hub, cfg.idFn(i))
		}

		return nil
	}
}

// Grid emits a rows×cols orthogonal grid. Cell (r,c) has index r*cols+c;
// for each cell in row-major order the right then the bottom connection is emitted.
// A 1×1 grid has no connections.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig, emit func(a, b string)) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					emit(id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					emit(id(r, c), id(r+1, c))
				}
			}
		}

		return nil
	}
}

// Complete emits every unordered pair {i,j}, i<j, in (i asc, j asc) order.
func Complete(n int) Constructor {
	return func(cfg builderConfig, emit func(a, b string)) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				emit(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// RandomSparse emits each unordered pair {i,j} independently with probability p.
// Endpoints that draw no connection do not exist in the resulting network.
// Requires an RNG unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig, emit func(a, b string)) error {
		if n < minSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == 0:
				case p == 1:
					emit(cfg.idFn(i), cfg.idFn(j))
				case cfg.rng.Float64() < p:
					emit(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
