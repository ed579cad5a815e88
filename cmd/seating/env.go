package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"seating/internal/config"
	"seating/internal/logging"
	"seating/pkg/sims/seating"
)

// runEnv is the resolved configuration shared by subcommands.
type runEnv struct {
	cfg   *config.Config
	log   *slog.Logger
	kind  seating.EngineKind
	rules []seating.Rule
	json  bool
}

// loadEnv merges the config file, environment and command flags.
func loadEnv(cmd *cobra.Command) (*runEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("engine"); v != "" {
		cfg.Engine = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if f := cmd.Flags().Lookup("policy"); f != nil && f.Changed {
		cfg.Runs = []config.RunConfig{{Policy: f.Value.String()}}
	}
	if f := cmd.Flags().Lookup("threshold"); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt("threshold")
		for i := range cfg.Runs {
			cfg.Runs[i].Threshold = n
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	env := &runEnv{cfg: cfg, log: logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())}
	env.kind, _ = cfg.EngineKind()
	env.rules, _ = cfg.Rules()
	env.json, _ = cmd.Flags().GetBool("json")
	return env, nil
}

// addRunFlags registers the single-run override flags.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("policy", "", "Solve only this policy: adjacent or visible")
	cmd.Flags().Int("threshold", 0, "Occupied-neighbor count that empties a seat (1-8)")
}

// readLayout parses the layout at path, or stdin when path is "-".
func (e *runEnv) readLayout(cmd *cobra.Command, path string) (*seating.Layout, error) {
	start := time.Now()
	var l *seating.Layout
	var err error
	if path == "-" {
		l, err = seating.ParseLayout(cmd.InOrStdin())
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open layout: %w", err)
		}
		defer f.Close()
		l, err = seating.ParseLayout(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	e.log.Debug("parsed layout",
		"width", l.Width-2, "height", l.Height-2, "seats", l.SeatCount(), "elapsed", time.Since(start))
	return l, nil
}

// solve runs one rule on the configured engine, logging its cost.
func (e *runEnv) solve(l *seating.Layout, r seating.Rule, kind seating.EngineKind) (seating.Result, time.Duration, error) {
	start := time.Now()
	eng, err := seating.NewEngine(l, r, kind)
	if err != nil {
		return seating.Result{}, 0, err
	}
	if g, ok := eng.(*seating.GraphEngine); ok {
		e.log.Debug("compiled graph", "rule", r, "nodes", g.Graph().Nodes(), "edges", g.Graph().EdgeCount(),
			"elapsed", time.Since(start))
	}
	var observe func(int, []uint8)
	if e.log.Enabled(context.Background(), logging.LevelTrace) {
		observe = func(gen int, occ []uint8) {
			e.log.Log(context.Background(), logging.LevelTrace, "generation",
				"rule", r, "engine", kind, "gen", gen, "occupied", seating.CountOccupied(occ))
		}
	}
	res := seating.StabilizeFunc(eng, observe)
	elapsed := time.Since(start)
	e.log.Debug("stabilized", "rule", r, "engine", kind, "generations", res.Generations,
		"occupied", res.Occupied(), "elapsed", elapsed)
	return res, elapsed, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
