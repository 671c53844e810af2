// SPDX-License-Identifier: MIT
// Package: lpclique/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices offset..offset+n-1; every unordered pair {i,j}, i<j, is an edge.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lpclique/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(methodComplete, g, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
