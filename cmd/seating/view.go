//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"seating/internal/app"
	"seating/internal/core"
	"seating/pkg/sims/seating"
)

func newViewCmd() *cobra.Command {
	viewCfg := app.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "view [layout]",
		Short: "Watch a layout stabilize in a window",
		Long: `Open a window that steps the layout one generation at a time.

Without a layout file a random one is generated from --width, --height,
--density and --seed. Keys: space pause, n step, r reset, s reseed, v toggle
neighbor lines, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if err := viewCfg.Validate(); err != nil {
				return err
			}
			opts, seed := viewOptions(cmd, env, args)

			sim := core.Sims()["seating"](opts)
			if s, ok := sim.(*seating.Sim); ok && s.Err() != nil {
				return s.Err()
			}
			env.log.Info("opening viewer", "sim", sim.Name(), "size", fmt.Sprintf("%dx%d", sim.Size().W, sim.Size().H),
				"rule", opts["policy"]+"/"+opts["threshold"], "engine", opts["engine"])

			w, h := viewCfg.WindowSize(sim.Size().W, sim.Size().H)
			ebiten.SetWindowSize(w, h)
			ebiten.SetWindowTitle("seating: " + opts["policy"])
			ebiten.SetTPS(viewCfg.TPS)
			if err := ebiten.RunGame(app.New(sim, viewCfg, seed)); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	addRunFlags(cmd)
	addGenFlags(cmd)
	viewCfg.Bind(cmd.Flags())
	return cmd
}

// viewOptions builds the sim factory options from the resolved environment.
func viewOptions(cmd *cobra.Command, env *runEnv, args []string) (map[string]string, int64) {
	rule := env.rules[0]
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	density, _ := cmd.Flags().GetFloat64("density")
	seed, _ := cmd.Flags().GetInt64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	opts := map[string]string{
		"policy":    rule.Policy.String(),
		"threshold": strconv.Itoa(int(rule.Threshold)),
		"engine":    env.kind.String(),
		"w":         strconv.Itoa(width),
		"h":         strconv.Itoa(height),
		"density":   strconv.FormatFloat(density, 'f', -1, 64),
		"seed":      strconv.FormatInt(seed, 10),
	}
	if len(args) == 1 {
		opts["input"] = args[0]
	}
	return opts, seed
}
