package cmd

import (
	"github.com/spf13/cobra"
)

// editCmd opens an existing script in the editor
var editCmd = &cobra.Command{
	Use:               "edit <script>",
	Short:             "Open a script in your editor.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeScriptNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		env, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}

		script, err := env.store.Lookup(args[0])
		if err != nil {
			return err
		}

		return env.editor(cmd).Edit(script.Path)
	},
}

func init() {
	addCommand(editCmd)
}
