//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [layout]",
		Short: "Watch a layout stabilize in a window (requires the ebiten build tag)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("view requires building with -tags ebiten")
		},
	}
}
