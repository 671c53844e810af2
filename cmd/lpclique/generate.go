package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lpclique/builder"
	"github.com/katalvlaran/lpclique/dimacs"
)

// family describes one generator: its parameter names and how to build it.
type family struct {
	params []string
	build  func(ints []int, p float64) builder.Constructor
}

var families = map[string]family{
	"complete": {
		params: []string{"n"},
		build:  func(a []int, _ float64) builder.Constructor { return builder.Complete(a[0]) },
	},
	"cycle": {
		params: []string{"n"},
		build:  func(a []int, _ float64) builder.Constructor { return builder.Cycle(a[0]) },
	},
	"path": {
		params: []string{"n"},
		build:  func(a []int, _ float64) builder.Constructor { return builder.Path(a[0]) },
	},
	"star": {
		params: []string{"n"},
		build:  func(a []int, _ float64) builder.Constructor { return builder.Star(a[0]) },
	},
	"wheel": {
		params: []string{"n"},
		build:  func(a []int, _ float64) builder.Constructor { return builder.Wheel(a[0]) },
	},
	"bipartite": {
		params: []string{"n1", "n2"},
		build:  func(a []int, _ float64) builder.Constructor { return builder.CompleteBipartite(a[0], a[1]) },
	},
	"random": {
		params: []string{"n", "p"},
		build:  func(a []int, p float64) builder.Constructor { return builder.RandomSparse(a[0], p) },
	},
}

func familyNames() string {
	names := make([]string, 0, len(families))
	for name, f := range families {
		names = append(names, name+" "+strings.Join(f.params, " "))
	}
	slices.Sort(names)
	return strings.Join(names, "\n  ")
}

func newGenerateCmd() *cobra.Command {
	var (
		out  string
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "generate <family> [params...]",
		Short: "Write a generated graph in DIMACS edge format",
		Long:  "Families:\n  " + familyNames(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, ok := families[args[0]]
			if !ok {
				return fmt.Errorf("unknown family %q", args[0])
			}
			params := args[1:]
			if len(params) != len(fam.params) {
				return fmt.Errorf("%s: want %d parameter(s) (%s), got %d",
					args[0], len(fam.params), strings.Join(fam.params, " "), len(params))
			}

			ints := make([]int, 0, len(params))
			var p float64
			for i, raw := range params {
				if fam.params[i] == "p" {
					v, err := strconv.ParseFloat(raw, 64)
					if err != nil {
						return fmt.Errorf("%s: p=%q: %w", args[0], raw, err)
					}
					p = v
					continue
				}
				v, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("%s: %s=%q: %w", args[0], fam.params[i], raw, err)
				}
				ints = append(ints, v)
			}

			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, fam.build(ints, p))
			if err != nil {
				return err
			}
			comment := fmt.Sprintf("%s %s seed=%d", args[0], strings.Join(params, " "), seed)

			if out == "" || out == "-" {
				return dimacs.Write(cmd.OutOrStdout(), g, comment)
			}
			if err := dimacs.WriteFile(out, g, comment); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s: %d vertices, %d edges\n",
				out, g.VertexCount(), g.EdgeCount())
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the random family")

	return cmd
}
