// File: writer.go
// Role: canonical DIMACS edge writer.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lpclique/core"
)

// Write serialises g to w. comment may be empty; embedded newlines are
// replaced by spaces.
func Write(w io.Writer, g *core.Graph, comment string) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	if comment == "" {
		comment = "generated by lpclique"
	}
	comment = strings.NewReplacer("\r", " ", "\n", " ").Replace(comment)
	fmt.Fprintf(bw, "c %s\n", comment)

	ids := g.Vertices()
	n := 0
	if len(ids) > 0 {
		n = ids[len(ids)-1]
	}
	fmt.Fprintf(bw, "p edge %d %d\n", n, g.EdgeCount())
	for _, u := range ids {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("Write: %w", err)
		}
		for _, v := range nbrs {
			if u < v {
				fmt.Fprintf(bw, "e %d %d\n", u, v)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and calls Write.
func WriteFile(path string, g *core.Graph, comment string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	return Write(f, g, comment)
}
