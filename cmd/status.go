package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"dotinstall/internal/installer"
	"dotinstall/internal/logger"
)

func newStatusCmd() *cobra.Command {
	var opts sourceOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where each descriptor's files stand without copying anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			st, err := opts.loadState(fs)
			if err != nil {
				return err
			}

			report, err := installer.Inspect(fs, opts.root, opts.loader(fs), st)
			if err != nil {
				return err
			}
			for _, pkg := range report {
				logger.Info("%s (%s) from %s", pkg.Name, pkg.Platform, pkg.Path)
				for _, p := range pkg.Pairs {
					logger.Info("  %-9s %s <- %s", p.Status, p.Dest, p.Src)
				}
			}
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
