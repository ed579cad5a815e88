package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <layout>",
		Short: "Print the stable seating picture for each configured policy",
		Long: `Render prints the fixed point of every configured policy using '#' for
occupied seats, 'L' for empty seats and '.' for floor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			l, err := env.readLayout(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, r := range env.rules {
				res, _, err := env.solve(l, r, env.kind)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s: %d occupied after %d generations\n", r, res.Occupied(), res.Generations)
				fmt.Fprint(w, l.Render(res.Occupancy))
			}
			return nil
		},
	}
	addRunFlags(cmd)
	return cmd
}
