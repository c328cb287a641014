// Package builder: the Build orchestrator and the Constructor contract.
package builder

import (
	"fmt"

	"github.com/katalvlaran/meshnet/core"
)

// Constructor applies one deterministic topology mutation using the resolved
// config. Constructors must validate parameters early, return sentinel
// errors rather than panic, and tolerate nodes admitted by a previous
// constructor in the same Build call.
type Constructor func(g *core.Graph[int, int64], cfg config) error

// Build creates a new graph with the given core options, resolves the
// builder configuration, and applies the constructors in order. The first
// constructor error is wrapped and returned immediately; no partial cleanup
// is attempted.
// Complexity: O(len(bopts)) resolution plus the sum of constructor costs.
func Build(gopts []core.GraphOption[int, int64], bopts []Option, cons ...Constructor) (*core.Graph[int, int64], error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// admit ensures nodes 0..n-1 exist, tolerating ones a previous constructor
// already added.
func admit(g *core.Graph[int, int64], n int) {
	for i := 0; i < n; i++ {
		if !g.HasNode(i) {
			_ = g.AddNode(i)
		}
	}
}
