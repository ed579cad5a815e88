package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"seating/pkg/core"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random seating layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _ := cmd.Flags().GetInt("width")
			h, _ := cmd.Flags().GetInt("height")
			density, _ := cmd.Flags().GetFloat64("density")
			seed, _ := cmd.Flags().GetInt64("seed")
			if w <= 0 || h <= 0 {
				return fmt.Errorf("width and height must be positive, got %dx%d", w, h)
			}
			if density < 0 || density > 1 {
				return fmt.Errorf("density must be between 0 and 1, got %g", density)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			fmt.Fprint(cmd.OutOrStdout(), core.RandomLayoutText(core.NewRNG(seed), w, h, density))
			return nil
		},
	}
	addGenFlags(cmd)
	return cmd
}

// addGenFlags registers the random layout flags.
func addGenFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 92, "Layout width in cells")
	cmd.Flags().Int("height", 98, "Layout height in cells")
	cmd.Flags().Float64("density", 0.78, "Probability that a cell is a seat")
	cmd.Flags().Int64("seed", 0, "Random seed (defaults to the current time)")
}
