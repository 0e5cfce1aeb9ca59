package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/banana/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective world config",
	Long: `Print the world config as YAML after applying the config file and
--collision override. Redirect it to a file to start a custom world.

Examples:
  banana config > ~/.banana/config.yaml
  banana config --config ./my-world.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		world, err := loadWorld()
		if err != nil {
			return err
		}
		out, err := config.Marshal(world)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
