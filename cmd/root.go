package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"dotinstall/internal/logger"
)

// envDotfilesRoot overrides the default dotfiles root.
const envDotfilesRoot = "DOTFILES_ROOT"

// defaultRoot is the directory walked for descriptors when neither --root nor
// $DOTFILES_ROOT is given.
const defaultRoot = "dotfiles"

// NewRootCmd builds the `dotinstall` command tree.
// Flag values live in the returned tree, so each call starts from the defaults.
func NewRootCmd() *cobra.Command {
	var debug, noColor bool

	rootCmd := &cobra.Command{
		Use:   "dotinstall",
		Short: "Copy dotfiles into place from per-package install descriptors",

		// Errors are printed once, as a single [ERROR] line, by Execute.
		SilenceErrors: true,
		SilenceUsage:  true,

		// PersistentPreRun runs before any subcommand and sets up logging.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(debug)
			if noColor {
				logger.DisableColor()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newStatusCmd())
	return rootCmd
}

// Execute runs the CLI against the process arguments and streams and exits
// with the resulting status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, logger.Output()))
}

// run executes the command tree with the given arguments, reading prompt
// answers from in and writing every log line to out.
// It returns the process exit status:
// - 0 when every descriptor was installed (or inspected) successfully.
// - 1 after printing exactly one [ERROR] line for the error that stopped the run.
func run(args []string, in io.Reader, out io.Writer) int {
	prev := logger.SetOutput(out)
	defer logger.SetOutput(prev)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)

	if err := rootCmd.Execute(); err != nil {
		// Nothing below the CLI prints fatal errors, so this is the only [ERROR] line
		logger.Error("%v", err)
		return 1
	}
	return 0
}

// rootDefault returns $DOTFILES_ROOT when set, otherwise defaultRoot.
func rootDefault() string {
	if root := os.Getenv(envDotfilesRoot); root != "" {
		return root
	}
	return defaultRoot
}
