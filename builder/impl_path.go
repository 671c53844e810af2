// SPDX-License-Identifier: MIT
// Package: lpclique/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i—(i+1) for i=0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lpclique/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(methodPath, g, cfg.id(i), cfg.id(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
