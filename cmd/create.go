package cmd

import (
	"fmt"

	"github.com/josephlewis42/fastbash/core/prompt"
	"github.com/spf13/cobra"
)

// createCmd saves a new script and opens it for editing
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new script interactively.",
	Long: `Prompts for a script name, writes the script template, opens it in your
editor and marks it executable. Existing scripts are opened unchanged.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		env, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}

		name, err := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).ReadLine("Enter script name: ")
		if err != nil {
			return err
		}

		script, created, err := env.store.Create(name, env.cfg.Template)
		if err != nil {
			return err
		}
		if !created {
			env.logger.Printf("Script '%s' already exists, opening it", name)
		}

		if err := env.editor(cmd).Edit(script.Path); err != nil {
			return err
		}

		// Some editors replace the file on save, losing its mode.
		if err := env.store.MakeExecutable(name); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Script '%s' created at %s\n", name, script.Path)
		return nil
	},
}

func init() {
	addCommand(createCmd)
}
