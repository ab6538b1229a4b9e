package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeScriptNames offers saved script names for the first argument. The
// directory is read every time so new scripts show up immediately.
func completeScriptNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	env, err := loadEnvironment(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names, err := env.store.Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
