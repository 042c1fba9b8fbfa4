package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LuoDiKaiHua/winget-source/pkg/manifest"
	"github.com/LuoDiKaiHua/winget-source/pkg/provider/github"
	"github.com/LuoDiKaiHua/winget-source/pkg/resolve"
)

// defaultManifest is the manifest path used when none is given.
const defaultManifest = "manifest.yml"

// newResolveCmd creates the resolve command, which reads a manifest and
// resolves the latest release for every package in it.
func newResolveCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "resolve [manifest]",
		Short: "Resolve the latest release for every package in a manifest",
		Long: `Resolve reads a package manifest (YAML or TOML) and fetches the latest
published release for each package concurrently.

Examples:
  winget-source resolve                    # ./manifest.yml
  winget-source resolve packages.toml      # explicit manifest
  winget-source resolve --token $TOKEN     # authenticated requests`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultManifest
			if len(args) == 1 {
				path = args[0]
			}
			return runResolve(cmd.Context(), path, token)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	return cmd
}

func runResolve(ctx context.Context, path, token string) error {
	logger := loggerFromContext(ctx)

	packages, err := manifest.Load(path, logger.Warnf)
	if err != nil {
		return err
	}
	if len(packages) == 0 {
		return fmt.Errorf("no packages found in %s", path)
	}
	logger.Infof("Found %d packages in %s", len(packages), path)

	gh := github.NewClient(token)
	gh.Logf = logger.Warnf

	registry := resolve.NewEmptyRegistry()
	registry.Register(gh)

	p := newProgress(logger)
	results, err := resolve.All(ctx, registry, packages)
	if err != nil {
		return err
	}

	resolved := 0
	for _, r := range results {
		printResult(r)
		if r.Err == nil {
			resolved++
		}
	}
	p.done(fmt.Sprintf("Resolved %d of %d packages", resolved, len(results)))

	if logger.GetLevel() <= charmlog.DebugLevel {
		if rl, err := gh.RateLimit(ctx); err == nil {
			logger.Debugf("API rate limit: %d/%d remaining", rl.Remaining, rl.Limit)
		}
	}
	return nil
}
