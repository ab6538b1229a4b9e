package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rmCmd deletes a saved script
var rmCmd = &cobra.Command{
	Use:               "rm <script>",
	Short:             "Delete a saved script.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeScriptNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		env, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}

		if err := env.store.Remove(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed script '%s'\n", args[0])
		return nil
	},
}

func init() {
	addCommand(rmCmd)
}
