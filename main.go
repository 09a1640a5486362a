package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pthm-cable/forage/camera"
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output generation and perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and hall of fame")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	maxSteps := flag.Int64("max-steps", 0, "Stop after N steps (0 = unlimited)")
	generations := flag.Int("generations", 0, "Stop after N generations (0 = unlimited)")
	renderEvery := flag.Int64("render-every", 0, "Draw the world to stderr every N steps (0 = never)")
	renderCols := flag.Int("render-cols", 80, "Width of rendered frames in characters")
	renderRows := flag.Int("render-rows", 40, "Height of rendered frames in characters")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	g, err := game.NewGame(cfg, game.Options{
		Seed:      *seed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting simulation",
		"seed", g.Seed(),
		"max_steps", *maxSteps,
		"generations", *generations,
	)

	var view *viewer
	if *renderEvery > 0 {
		view = &viewer{cam: camera.New(*renderCols, *renderRows), every: *renderEvery, out: os.Stderr}
	}

	code := 0
	if err := run(ctx, g, view, *maxSteps, *generations); err != nil {
		slog.Error("simulation stopped", "tick", g.Tick(), "generation", g.Generation(), "error", err)
		code = 1
	}
	if err := g.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
		code = 1
	}
	os.Exit(code)
}

// run steps g until a limit is reached or ctx is cancelled.
func run(ctx context.Context, g *game.Game, view *viewer, maxSteps int64, generations int) error {
	for {
		select {
		case <-ctx.Done():
			slog.Info("interrupted", "tick", g.Tick(), "generation", g.Generation())
			return nil
		default:
		}

		if err := g.Step(); err != nil {
			return err
		}
		view.draw(g)

		if maxSteps > 0 && g.Tick() >= maxSteps {
			slog.Info("max steps reached", "tick", g.Tick())
			return nil
		}
		if generations > 0 && g.Generation() >= generations {
			if stats, ok := g.LastStats(); ok {
				slog.Info("generations reached", "stats", stats)
			}
			return nil
		}
	}
}
