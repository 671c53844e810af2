// File: reader.go
// Role: line-oriented DIMACS edge reader.

package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lpclique/core"
)

var (
	// ErrNilReader is returned by Read for a nil io.Reader.
	ErrNilReader = errors.New("dimacs: reader is nil")

	// ErrNilGraph is returned by Write for a nil graph.
	ErrNilGraph = errors.New("dimacs: graph is nil")
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Stats summarises one Read.
type Stats struct {
	Lines    int // physical lines read
	Edges    int // accepted "e" lines, duplicates included
	Skipped  int // malformed "e" lines
	Declared int // N from the "p" line, 0 if absent or ignored
}

// Option configures Read.
type Option func(*readConfig)

type readConfig struct {
	declared bool
}

// WithDeclaredVertices makes Read create vertices 1..N from "p edge N M", so
// isolated vertices survive the round trip.
func WithDeclaredVertices() Option {
	return func(c *readConfig) { c.declared = true }
}

// Read parses r into a new Graph.
//
// Errors:
//   - ErrNilReader if r is nil.
//   - the underlying read error (e.g. bufio.ErrTooLong), wrapped with the line number.
func Read(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	var st Stats
	if r == nil {
		return nil, st, ErrNilReader
	}
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		st.Lines++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		switch f[0] {
		case "e":
			if !addEdge(g, f) {
				st.Skipped++
				continue
			}
			st.Edges++
		case "p":
			if !cfg.declared || len(f) < 3 {
				continue
			}
			n, err := strconv.Atoi(f[2])
			if err != nil || n <= 0 {
				continue
			}
			st.Declared = n
			for id := 1; id <= n; id++ {
				if err = g.AddVertex(id); err != nil {
					return nil, st, fmt.Errorf("Read: line %d: %w", st.Lines, err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("Read: after line %d: %w", st.Lines, err)
	}

	return g, st, nil
}

// addEdge applies one "e u v" record; false means malformed.
func addEdge(g *core.Graph, f []string) bool {
	if len(f) < 3 {
		return false
	}
	u, err := strconv.Atoi(f[1])
	if err != nil {
		return false
	}
	v, err := strconv.Atoi(f[2])
	if err != nil {
		return false
	}

	return g.CreateEdge(u, v) == nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}
