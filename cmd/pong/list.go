package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		games := registry.List()
		out := cmd.OutOrStdout()
		if len(games) == 0 {
			fmt.Fprintln(out, "No games registered.")
			return
		}

		fmt.Fprintln(out, "Available games:")
		for _, g := range games {
			fmt.Fprintf(out, "  %-10s %s\n", g.ID, g.Title)
		}
	},
}
