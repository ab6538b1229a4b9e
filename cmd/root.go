package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/josephlewis42/fastbash/core/config"
	"github.com/josephlewis42/fastbash/core/proc"
	"github.com/josephlewis42/fastbash/core/scripts"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	errInvalidUsage = errors.New("invalid usage")

	errorColor = color.New(color.FgRed, color.Bold)
)

// environment holds everything a command needs for one invocation.
type environment struct {
	cfg    *config.Configuration
	store  *scripts.Store
	logger *log.Logger
}

// loadEnvironment resolves the fastbash home, creating the scripts directory
// when needed.
func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	logger := log.New(cmd.ErrOrStderr(), "", 0)

	dir, err := config.DefaultDir(os.Getenv)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Initialize(afero.NewOsFs(), dir, logger)
	if err != nil {
		return nil, err
	}

	store := scripts.NewStore(cfg.Fs(), cfg.ScriptsDir())
	store.Reserved = reservedNames()
	store.DescriptionLines = cfg.DescriptionLines

	return &environment{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}, nil
}

func (e *environment) editor(cmd *cobra.Command) *proc.Editor {
	return &proc.Editor{
		Streams: streams(cmd),
		Command: e.cfg.EditorCommand(os.Getenv),
		Logger:  e.logger,
	}
}

func (e *environment) executor(cmd *cobra.Command) *proc.Executor {
	return &proc.Executor{Streams: streams(cmd)}
}

func streams(cmd *cobra.Command) proc.Streams {
	return proc.Streams{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}

// subcommandNames holds the names and aliases of registered subcommands.
var subcommandNames []string

// addCommand registers a subcommand of the root.
func addCommand(sub *cobra.Command) {
	rootCmd.AddCommand(sub)
	subcommandNames = append(subcommandNames, sub.Name())
	subcommandNames = append(subcommandNames, sub.Aliases...)
}

// reservedNames are the words dispatched as subcommands rather than scripts.
func reservedNames() []string {
	out := append([]string(nil), subcommandNames...)
	// Cobra adds these lazily on Execute.
	return append(out, "help", "completion")
}

type rootAction int

const (
	actionHelp rootAction = iota
	actionInvalid
	actionRun
)

// classifyRootArgs decides what to do with arguments that didn't match a
// subcommand.
func classifyRootArgs(args []string) rootAction {
	switch {
	case len(args) == 0:
		return actionHelp
	case args[0] == "-h" || args[0] == "--help":
		return actionHelp
	case strings.HasPrefix(args[0], "-"):
		return actionInvalid
	default:
		return actionRun
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fastbash [script] [args...]",
	Short: "Quick script manager",
	Long:  `Save, edit and run short shell scripts from ~/.fastbash/scripts.`,
	Args:  cobra.ArbitraryArgs,

	// Everything after the script name belongs to the script.
	DisableFlagParsing: true,
	SilenceErrors:      true,

	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return completeScriptNames(cmd, nil, toComplete)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		switch classifyRootArgs(args) {
		case actionHelp:
			return cmd.Help()
		case actionInvalid:
			printUsage(cmd.ErrOrStderr())
			fmt.Fprintln(cmd.ErrOrStderr())
			return fmt.Errorf("%w: unknown flag %q", errInvalidUsage, args[0])
		default:
			return runScript(cmd, args[0], args[1:])
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	os.Exit(exitStatus(rootCmd.ErrOrStderr(), err))
}

// exitStatus reports err and converts it to a process exit status. Scripts
// that fail pass their own status through without a message.
func exitStatus(w io.Writer, err error) int {
	var exitErr *proc.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		fmt.Fprintf(w, "%s %v\n", errorPrefix(w), err)
		if errors.Is(err, config.ErrConfiguration) {
			fmt.Fprintf(w, "check $%s and %s\n", config.HomeEnv, config.ConfigurationName)
		}
		return 1
	}
}

// errorPrefix colors "error:" only when w itself is a terminal; color.NoColor
// is decided by stdout, which may be redirected separately.
func errorPrefix(w io.Writer) string {
	prefix := *errorColor
	if isColorTerminal(w) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	return prefix.Sprint("error:")
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("TERM") == "dumb" {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			printUsage(cmd.OutOrStdout())
			return
		}
		defaultHelp(cmd, args)
	})
}
