// Command routepuzzle runs the shortest-route puzzle.
//
// Usage:
//
//	routepuzzle [-config file.yaml] [-mode tui|gui|solve] [-tier 1|2|3] [-seed n]
//	            [-log-level debug|info|warn|error] [-metrics-addr host:port]
//
// -mode solve prints a generated instance and its optimal route without any
// interaction, which is handy for checking seeds.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/routepuzzle/config"
	"github.com/katalvlaran/routepuzzle/internal/gui"
	"github.com/katalvlaran/routepuzzle/internal/tui"
	"github.com/katalvlaran/routepuzzle/metrics"
	"github.com/katalvlaran/routepuzzle/puzzle"
	"github.com/katalvlaran/routepuzzle/tsp"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "routepuzzle:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	mode        string
	tier        int
	seed        int64
	logLevel    string
	metricsAddr string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("routepuzzle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.mode, "mode", "tui", "host: tui, gui or solve")
	fs.IntVar(&o.tier, "tier", 1, "difficulty for -mode solve: 1, 2 or 3")
	fs.Int64Var(&o.seed, "seed", 0, "generation seed (0 = time based)")
	fs.StringVar(&o.logLevel, "log-level", "", "override log.level")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "override metrics.addr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.metricsAddr != "" {
		cfg.Metrics.Addr = o.metricsAddr
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Log, stderr)
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(o.seed))

	reg := metrics.NewRegistry()
	factory := func(tier puzzle.Tier, opts ...puzzle.Option) (*puzzle.Session, error) {
		base := []puzzle.Option{
			puzzle.WithConfig(cfg),
			puzzle.WithRand(rng),
			puzzle.WithLogger(logger),
			puzzle.WithMetrics(reg),
		}
		return puzzle.New(tier, append(base, opts...)...)
	}

	logger.Info("routepuzzle starting", "mode", o.mode, "seed", o.seed)

	switch o.mode {
	case "solve":
		return solve(stdout, factory, puzzle.Tier(o.tier), o.seed)
	case "tui", "gui":
	default:
		return fmt.Errorf("unknown -mode %q", o.mode)
	}

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, reg, logger)
	}

	if o.mode == "gui" {
		return gui.Run(factory, cfg.Area.Width, cfg.Area.Height)
	}

	_, err = tea.NewProgram(
		tui.NewApp(factory, cfg.Area.Width, cfg.Area.Height),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	).Run()

	return err
}

func newLogger(c config.Log, w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	ho := &slog.HandlerOptions{Level: level}
	if c.Format == "text" {
		return slog.New(slog.NewTextHandler(w, ho))
	}

	return slog.New(slog.NewJSONHandler(w, ho))
}

func serveMetrics(addr string, reg *metrics.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	logger.Info("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics endpoint failed", "error", err)
	}
}

// solve prints one generated instance, its optimal route, a Held-Karp
// cross-check of the cost and the spanning-tree lower bound.
func solve(w io.Writer, factory tui.Factory, tier puzzle.Tier, seed int64) error {
	s, err := factory(tier)
	if err != nil {
		return err
	}
	g := s.Graph()
	best := s.Optimal()

	fmt.Fprintf(w, "tier: %s (%d nodes) seed: %d\n", tier, g.Order(), seed)
	for _, n := range g.Nodes() {
		fmt.Fprintf(w, "node %d (%.1f, %.1f)\n", n.ID, n.Pos.X(), n.Pos.Y())
	}
	fmt.Fprintf(w, "start: %s end: %s\n", s.Start(), s.End())
	fmt.Fprintf(w, "route: %v\n", best.Route)
	fmt.Fprintf(w, "cost: %.3f (%d candidates, %s)\n", best.Cost, best.Evaluated, s.SolveTime().Round(time.Microsecond))

	hk, err := tsp.HeldKarpPath(g, s.Start(), s.End())
	if err != nil {
		return err
	}
	status := "ok"
	if d := hk.Cost - best.Cost; d > 1e-9 || d < -1e-9 {
		status = "MISMATCH"
	}
	fmt.Fprintf(w, "held-karp: %.3f %s\n", hk.Cost, status)

	mst, err := tsp.MSTLowerBound(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "mst bound: %.3f\n", mst.Weight)

	return nil
}
