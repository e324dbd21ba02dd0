package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default pong configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.pong/configs/pong.yaml or ./configs/pong.yaml and edit the
values you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultPongYAML())
		return err
	},
}
