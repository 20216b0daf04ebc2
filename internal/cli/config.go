package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viveksalimath/Lemo.ai/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage bridge settings",
	Long: fmt.Sprintf(`Read and write bridge settings stored at ~/.lemo/config.yaml.

Keys: %s (duration, default %s), %s (default %q), %s (default %q).`,
		config.KeyOutputDelay, config.DefaultOutputDelay,
		config.KeyLogLevel, config.DefaultLogLevel,
		config.KeySkillsRoot, config.DefaultSkillsRoot),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
