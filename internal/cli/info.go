package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuoDiKaiHua/winget-source/pkg/provider/github"
)

// newInfoCmd creates the info command, which prints repository metadata
// for a single GitHub URL.
func newInfoCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "info <repository-url>",
		Short: "Show repository metadata for a GitHub URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args[0], token)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	return cmd
}

func runInfo(ctx context.Context, rawURL, token string) error {
	gh := github.NewClient(token)
	if !gh.CanHandle(rawURL) {
		return fmt.Errorf("not a GitHub repository URL: %s", rawURL)
	}

	repo, err := gh.RepoInfo(ctx, rawURL)
	if err != nil {
		return err
	}
	printRepo(repo)
	return nil
}
