package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lpclique"
	"github.com/katalvlaran/lpclique/bnb"
	"github.com/katalvlaran/lpclique/config"
	"github.com/katalvlaran/lpclique/dimacs"
	"github.com/katalvlaran/lpclique/logger"
	"github.com/katalvlaran/lpclique/lp"
	"github.com/katalvlaran/lpclique/metrics"
	"github.com/katalvlaran/lpclique/model"
)

// solveFlags are the root command flags; zero values mean "use config".
type solveFlags struct {
	configPath   string
	workers      int
	greedySeed   bool
	logLevel     string
	metricsAddr  string
	declared     bool
	pairRowsOnly bool
}

func newRootCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "lpclique <graph-file> [time-limit-seconds]",
		Short: "Exact maximum clique by LP-based branch-and-bound",
		Long: `lpclique reads an undirected graph ("e u v" lines) and searches for a
maximum clique. Each search node solves an LP relaxation strengthened with
independent-set cuts from a greedy colouring.

Settings come from defaults, an optional YAML file (--config or
$LPCLIQUE_CONFIG), LPCLIQUE_* environment variables and finally flags.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.IntVar(&f.workers, "workers", 0, "concurrently explored branches (default from config: 1)")
	fl.BoolVar(&f.greedySeed, "greedy-seed", false, "seed the search with a greedy clique")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fl.BoolVar(&f.declared, "declared-vertices", false, `create vertices 1..N from the "p edge N M" line`)
	fl.BoolVar(&f.pairRowsOnly, "pair-rows-only", false, "omit independent-set cuts (weaker bound)")

	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// loadConfig merges the config sources with the flags the user actually set.
func loadConfig(cmd *cobra.Command, args []string, f solveFlags) (*config.Config, error) {
	var opts []config.LoaderOption
	if f.configPath != "" {
		opts = append(opts, config.WithFile(f.configPath))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("workers") {
		cfg.Search.Workers = f.workers
	}
	if fl.Changed("greedy-seed") {
		cfg.Search.GreedySeed = f.greedySeed
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("metrics-addr") {
		cfg.Metrics.Enabled = f.metricsAddr != ""
		cfg.Metrics.Addr = f.metricsAddr
	}
	if len(args) > 1 {
		secs, err := strconv.Atoi(args[1])
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("time limit %q: want a positive number of seconds", args[1])
		}
		cfg.Search.TimeLimit = time.Duration(secs) * time.Second
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	cfg, err := loadConfig(cmd, args, f)
	if err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	log = log.With("run_id", uuid.NewString())

	var rec *metrics.Metrics
	if cfg.Metrics.Enabled {
		var stop func()
		rec, stop = serveMetrics(cfg.Metrics, log)
		defer stop()
	}

	var readOpts []dimacs.Option
	if f.declared {
		readOpts = append(readOpts, dimacs.WithDeclaredVertices())
	}
	g, st, err := dimacs.ReadFile(args[0], readOpts...)
	if err != nil {
		return err
	}
	log.Info("graph loaded", "file", args[0],
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "skipped_lines", st.Skipped)

	solver, err := lp.NewSimplex(cfg.Solver.Tolerance)
	if err != nil {
		return err
	}
	engineOpts := []bnb.Option{
		bnb.WithWorkers(cfg.Search.Workers),
		bnb.WithEpsilon(cfg.Search.Epsilon),
		bnb.WithLogger(log),
	}
	if rec != nil {
		engineOpts = append(engineOpts, bnb.WithRecorder(rec))
	}
	opts := []lpclique.Option{
		lpclique.WithSolver(solver),
		lpclique.WithEngineOptions(engineOpts...),
	}
	if cfg.Search.GreedySeed {
		opts = append(opts, lpclique.WithGreedySeed())
	}
	if f.pairRowsOnly {
		opts = append(opts, lpclique.WithModelOptions(model.WithoutIndependentSets()))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Search.TimeLimit)
	defer cancel()

	start := time.Now()
	res, err := lpclique.FindMaxClique(ctx, g, opts...)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, bnb.ErrInterrupted):
		observe(rec, metrics.OutcomeInterrupted, elapsed)
		log.Warn("time limit reached", "limit", cfg.Search.TimeLimit, "size", res.Size)
		return printTimeout(cmd.OutOrStdout(), res)
	case err != nil:
		observe(rec, metrics.OutcomeFailed, elapsed)
		return err
	}
	observe(rec, metrics.OutcomeComplete, elapsed)
	if !g.IsClique(res.Clique) {
		return fmt.Errorf("internal error: result %v is not a clique", res.Clique)
	}
	log.Debug("search stats", "nodes", res.Stats.Nodes, "lp_solves", res.Stats.LPSolves,
		"root_bound", res.RootBound, "max_depth", res.Stats.MaxDepth)

	return printResult(cmd.OutOrStdout(), elapsed, res)
}

func observe(m *metrics.Metrics, outcome string, elapsed time.Duration) {
	if m != nil {
		m.ObserveRun(outcome, elapsed)
	}
}

func printResult(w io.Writer, elapsed time.Duration, res bnb.Result) error {
	_, err := fmt.Fprintf(w, "%.3f %d %v\n", elapsed.Seconds(), res.Size, res.Clique)
	return err
}

func printTimeout(w io.Writer, res bnb.Result) error {
	_, err := fmt.Fprintf(w, "%d %v timeout!\n", res.Size, res.Clique)
	return err
}

// serveMetrics registers the search collectors on a private registry and
// serves it over HTTP until stop is called.
func serveMetrics(cfg config.MetricsConfig, log *slog.Logger) (*metrics.Metrics, func()) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "addr", cfg.Addr, "error", err)
		}
	}()
	log.Info("metrics endpoint", "addr", cfg.Addr, "path", cfg.Path)

	return m, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
