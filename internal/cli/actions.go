package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/viveksalimath/Lemo.ai/sdk"
)

var actionsJSON bool

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the skill actions compiled into the bridge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printActions(cmd.OutOrStdout(), sdk.DefaultRegistry.Names(), actionsJSON)
	},
}

func init() {
	actionsCmd.Flags().BoolVar(&actionsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(actionsCmd)
}

func printActions(w io.Writer, names []string, asJSON bool) error {
	if asJSON {
		if names == nil {
			names = []string{}
		}
		out, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling actions: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	if len(names) == 0 {
		fmt.Fprintln(w, "No actions registered.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}
