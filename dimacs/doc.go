// Package dimacs reads and writes undirected graphs in the DIMACS edge format.
//
// Reading is deliberately lenient:
//
//	e <u> <v>      edge between u and v (1-based positive IDs)
//	p edge <N> <M> problem line; honoured only with WithDeclaredVertices
//	anything else  ignored (comments "c ...", blank lines, other records)
//
// An "e" line with fewer than three fields, a non-integer or non-positive
// endpoint, or u == v is skipped and counted in Stats.Skipped; it never aborts
// the load. Duplicate edges collapse in the graph.
//
// Write emits a canonical file: one comment line, the problem line, then one
// "e u v" line per edge with u < v, sorted.
package dimacs
