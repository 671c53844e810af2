// SPDX-License-Identifier: MIT
// Package: lpclique/builder
//
// impl_disjoint.go — implementation of Disjoint(cons...) constructor.
//
// Contract:
//   • Each block is built on fresh IDs: its offset is one past the largest
//     vertex ID present when the block starts.
//   • A nil block yields ErrConstructFailed.
//
// Use it to assemble instances with several components, e.g. two disjoint
// edges (Disjoint(Path(2), Path(2))) or a planted clique next to noise.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lpclique/core"
)

const methodDisjoint = "Disjoint"

// Disjoint returns a Constructor that places every block on its own ID range.
func Disjoint(cons ...Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("%s: nil block at index %d: %w", methodDisjoint, i, ErrConstructFailed)
			}
			block := cfg
			if ids := g.Vertices(); len(ids) > 0 {
				block.offset = ids[len(ids)-1] + 1
			}
			if err := fn(g, block); err != nil {
				return fmt.Errorf("%s: block %d: %w", methodDisjoint, i, err)
			}
		}

		return nil
	}
}
