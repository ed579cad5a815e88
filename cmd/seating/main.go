package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seating",
		Short: "Seat stabilization simulator",
		Long: `seating fills and empties the seats of a waiting-area layout until no
seat changes, under the adjacency or line-of-sight neighbor policy.

Layouts are text files of 'L' (seat) and '.' (floor), one row per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "YAML run configuration file")
	rootCmd.PersistentFlags().String("engine", "", "Engine: graph or grid (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug, trace")

	rootCmd.AddCommand(
		newSolveCmd(),
		newCompareCmd(),
		newRenderCmd(),
		newGenCmd(),
		newViewCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd, map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seating version %s\n", version)
			return nil
		},
	}
}
