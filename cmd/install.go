package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"dotinstall/internal/config"
	"dotinstall/internal/installer"
	"dotinstall/internal/logger"
	"dotinstall/internal/state"
)

// sourceOptions are the flags shared by commands that read descriptors.
type sourceOptions struct {
	root      string
	statePath string
	platform  string
}

func (o *sourceOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.root, "root", "r", rootDefault(), "Dotfiles root directory searched for *install*.yaml descriptors")
	cmd.Flags().StringVar(&o.statePath, "state", state.DefaultPath(), "Install state file (empty to disable)")
	cmd.Flags().StringVar(&o.platform, "platform", "", "Override the detected platform (Linux, Darwin, Windows)")
	_ = cmd.Flags().MarkHidden("platform")
}

func (o *sourceOptions) loader(fs afero.Fs) *config.Loader {
	l := config.NewLoader(fs)
	if o.platform != "" {
		l.Platform = o.platform
	}
	return l
}

// loadState returns nil when state tracking is disabled.
func (o *sourceOptions) loadState(fs afero.Fs) (*state.State, error) {
	if o.statePath == "" {
		return nil, nil
	}
	return state.LoadState(fs, o.statePath)
}

func newInstallCmd() *cobra.Command {
	var opts sourceOptions
	var continueOnError bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Copy every descriptor's sources to their destinations",
		Long: `Walks the dotfiles root for files whose name contains "install" and ends in
.yaml, and copies each listed source to its destination for the current platform.
Existing destinations are only overwritten after confirmation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			st, err := opts.loadState(fs)
			if err != nil {
				return err
			}

			runner := &installer.Runner{
				Fs:              fs,
				Root:            opts.root,
				Loader:          opts.loader(fs),
				Executor:        installer.NewExecutor(fs, installer.NewLinePrompter(cmd.InOrStdin()), st),
				ContinueOnError: continueOnError,
			}
			sum, runErr := runner.Run(cmd.Context())
			logger.Debug("Run finished: %d descriptor(s), %d copied, %d skipped, %d failed",
				sum.Descriptors, sum.Copied, sum.Skipped, sum.Failed)

			// Completed copies are recorded even when the run was aborted
			if st != nil {
				if err := state.SaveState(fs, opts.statePath, st); err != nil {
					if runErr != nil {
						logger.Warn("%v", err)
						return runErr
					}
					return err
				}
			}
			return runErr
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Report failing descriptors and keep going instead of stopping")
	return cmd
}
