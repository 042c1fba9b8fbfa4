// Package cli implements the winget-source command-line interface.
//
// The CLI reads a manifest of package descriptors, resolves the latest
// published release for each through the provider registry, and prints a
// per-package report. Loggers are passed through context.Context so every
// command shares the --verbose behavior.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LuoDiKaiHua/winget-source/pkg/buildinfo"
)

// Execute runs the winget-source CLI and returns an error if any command
// fails. This is the main entry point for the application. ctx carries
// process-level cancellation (interrupt signals) into every command.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "winget-source",
		Short:        "Resolve the latest release for declared packages",
		Long:         `winget-source reads a manifest of software packages hosted on source-control providers and resolves each one's latest published release, optionally selecting a download asset by filename pattern.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newResolveCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(ctx)
}
