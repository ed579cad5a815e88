package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"seating/pkg/sims/seating"
)

type engineTiming struct {
	Engine      string        `json:"engine"`
	Occupied    int           `json:"occupied"`
	Generations int           `json:"generations"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

type comparison struct {
	Policy    string         `json:"policy"`
	Threshold int            `json:"threshold"`
	Engines   []engineTiming `json:"engines"`
	Agree     bool           `json:"agree"`
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <layout>",
		Short: "Run every engine on each policy and compare results and timings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			l, err := env.readLayout(cmd, args[0])
			if err != nil {
				return err
			}
			rounds, _ := cmd.Flags().GetInt("rounds")
			if rounds < 1 {
				rounds = 1
			}

			var out []comparison
			mismatch := false
			for _, r := range env.rules {
				c := comparison{Policy: r.Policy.String(), Threshold: int(r.Threshold), Agree: true}
				for _, kind := range seating.EngineKinds {
					var res seating.Result
					var best time.Duration
					for i := 0; i < rounds; i++ {
						var elapsed time.Duration
						res, elapsed, err = env.solve(l, r, kind)
						if err != nil {
							return err
						}
						if i == 0 || elapsed < best {
							best = elapsed
						}
					}
					c.Engines = append(c.Engines, engineTiming{
						Engine:      kind.String(),
						Occupied:    res.Occupied(),
						Generations: res.Generations,
						Elapsed:     best,
					})
				}
				for _, t := range c.Engines[1:] {
					if t.Occupied != c.Engines[0].Occupied || t.Generations != c.Engines[0].Generations {
						c.Agree = false
						mismatch = true
					}
				}
				out = append(out, c)
			}

			if env.json {
				if err := writeJSON(cmd, out); err != nil {
					return err
				}
			} else {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "POLICY\tTHRESHOLD\tENGINE\tOCCUPIED\tGENERATIONS\tBEST")
				for _, c := range out {
					for _, t := range c.Engines {
						fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%s\n",
							c.Policy, c.Threshold, t.Engine, t.Occupied, t.Generations, t.Elapsed)
					}
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			if mismatch {
				return fmt.Errorf("engines disagree")
			}
			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Int("rounds", 3, "Runs per engine; the fastest is reported")
	return cmd
}
