// SPDX-License-Identifier: MIT
// Package: lpclique/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Index 0 is the hub; spokes 0—i for i=1..n-1 in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lpclique/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star K_{1,n-1} centred at the first ID.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			if err := link(methodStar, g, hub, cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
