package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/josephlewis42/fastbash/core/scripts"
	"github.com/spf13/cobra"
)

var (
	lsNamesOnly bool
	lsColor     colorPrinter

	scriptNameColor = color.New(color.FgGreen, color.Bold)
)

// lsCmd lists saved scripts with their descriptions
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved scripts.",
	Long: `Lists saved scripts alongside the "# description: ..." comment found near
the top of each one.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := lsColor.Validate(); err != nil {
			return err
		}
		cmd.SilenceUsage = true

		env, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}

		all, err := env.store.List()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, script := range all {
			if lsNamesOnly {
				fmt.Fprintln(w, script.Name)
				continue
			}

			desc, err := env.store.Description(script.Name)
			if err != nil {
				env.logger.Printf("ls: couldn't read %s: %v", script.Name, err)
				desc = scripts.NoDescription
			}
			fmt.Fprintf(w, "%s %s\n", lsColor.Sprintf(scriptNameColor, "%-20s", script.Name), desc)
		}

		return nil
	},
}

func init() {
	addCommand(lsCmd)

	lsCmd.Flags().BoolVarP(&lsNamesOnly, "quiet", "q", false, "Only print script names.")
	lsColor.Init(lsCmd)
}
