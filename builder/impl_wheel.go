// SPDX-License-Identifier: MIT
// Package: lpclique/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (outer cycle has n-1 ≥ 3 vertices).
//   • Rim = indices 0..n-2 (built by Cycle), hub = index n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lpclique/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := cfg.id(n - 1)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", methodWheel, hub, err)
		}
		for i := 0; i < n-1; i++ {
			if err := link(methodWheel, g, hub, cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
