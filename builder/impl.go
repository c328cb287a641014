// Package builder: the topology constructors.
//
// Contract shared by every constructor:
//   - Validate parameters first; fail fast with zero side effects.
//   - Admit nodes 0..n-1 in ascending order, then emit links in a stable,
//     documented order, so a fixed seed and option set reproduce the graph.
//   - Wrap core errors with the constructor name for context.
package builder

import (
	"fmt"

	"github.com/katalvlaran/meshnet/core"
)

const (
	methodLine         = "Line"
	methodRing         = "Ring"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minLineNodes     = 2
	minRingNodes     = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minSparseNodes   = 1

	probMin = 0.0
	probMax = 1.0
)

// Line returns a Constructor for the directed chain 0→1→…→n-1.
// Complexity: O(n) nodes + O(n-1) links.
func Line(n int) Constructor {
	return func(g *core.Graph[int, int64], cfg config) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewNodes)
		}
		admit(g, n)
		for i := 0; i < n-1; i++ {
			if err := g.AddLink(i, i+1, cfg.payload(i, i+1)); err != nil {
				return fmt.Errorf("%s: AddLink(%d,%d): %w", methodLine, i, i+1, err)
			}
		}

		return nil
	}
}

// Ring returns a Constructor for the directed cycle 0→1→…→n-1→0.
// Complexity: O(n) nodes + O(n) links.
func Ring(n int) Constructor {
	return func(g *core.Graph[int, int64], cfg config) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}
		admit(g, n)
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			if err := g.AddLink(i, next, cfg.payload(i, next)); err != nil {
				return fmt.Errorf("%s: AddLink(%d,%d): %w", methodRing, i, next, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor dual-linking center 0 with every leaf 1..n-1.
// Complexity: O(n) nodes + O(2(n-1)) links.
func Star(n int) Constructor {
	return func(g *core.Graph[int, int64], cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		admit(g, n)
		for i := 1; i < n; i++ {
			if err := g.AddDual(0, i, cfg.payload(0, i)); err != nil {
				return fmt.Errorf("%s: AddDual(0,%d): %w", methodStar, i, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor dual-linking every unordered pair of the n
// nodes, in (i asc, j asc, j > i) order.
// Complexity: O(n) nodes + O(n²) links.
func Complete(n int) Constructor {
	return func(g *core.Graph[int, int64], cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		admit(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddDual(i, j, cfg.payload(i, j)); err != nil {
					return fmt.Errorf("%s: AddDual(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor running one Bernoulli(p) trial per
// ordered pair (i, j), i ≠ j, in (i asc, j asc) order. The trial order is
// fixed, so a fixed seed reproduces the same links.
// Complexity: O(n) nodes + O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[int, int64], cfg config) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		admit(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := g.AddLink(i, j, cfg.payload(i, j)); err != nil {
					return fmt.Errorf("%s: AddLink(%d,%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
