package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viveksalimath/Lemo.ai/internal/config"
	"github.com/viveksalimath/Lemo.ai/internal/runtime"
	"github.com/viveksalimath/Lemo.ai/sdk"
)

var runCmd = &cobra.Command{
	Use:   "run <intent-file>",
	Short: "Run the skill action of an intent object",
	Long: `Run the skill action named by an intent object file.

The skill is looked up under the skills root as <domain>/<skill>/ and its
config is read from config/<lang>.json. Answers are written to stdout, one
JSON line each.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("skills-root", config.DefaultSkillsRoot, "Directory holding <domain>/<skill>/ skill directories")
	_ = viper.BindPFlag(config.KeySkillsRoot, runCmd.Flags().Lookup("skills-root"))
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := config.Current()
	r := &runtime.Runner{
		Registry:   sdk.DefaultRegistry,
		SkillsRoot: settings.SkillsRoot,
		Out:        cmd.OutOrStdout(),
		Log:        logger,
		Delay:      settings.OutputDelay,
		Version:    buildVersion,
	}
	if err := r.Run(ctx, args[0]); err != nil {
		return fmt.Errorf("running intent %s: %w", args[0], err)
	}
	return nil
}
