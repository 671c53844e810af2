// Command lpclique finds a maximum clique of a DIMACS edge-format graph.
//
//	lpclique <graph-file> [time-limit-seconds]
//	lpclique generate <family> [params...] [-o file]
//
// On completion it prints "<elapsed-seconds> <size> [v1 v2 ...]"; when the time
// limit (default 3600 s) expires first it prints "<size> [v1 v2 ...] timeout!".
// Both exit with status 0.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
