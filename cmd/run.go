package cmd

import (
	"github.com/spf13/cobra"
)

// runScript runs a saved script, any failure exit status is passed back as
// a *proc.ExitError.
func runScript(cmd *cobra.Command, name string, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	script, err := env.store.Lookup(name)
	if err != nil {
		return err
	}

	return env.executor(cmd).Run(name, script.Path, args)
}
