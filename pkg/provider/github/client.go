package github

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/LuoDiKaiHua/winget-source/pkg/provider"
)

// repoURLPatterns are the accepted GitHub repository URL shapes, tried in
// order: repository root, sub-pages (tree, blob, releases, ...), and
// archive download links. Each captures owner (group 1) and repo (group 2).
var repoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/?(?:\?.*)?$`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/(?:tree|blob|releases|actions|issues|pull)/`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/archive/`),
}

// releasePageSize is how many recent releases are fetched when pre-releases
// are included. The API returns them newest-first; no client-side sorting.
const releasePageSize = 10

// Client resolves releases through the GitHub REST API.
// It implements [provider.Provider] and is safe for concurrent use.
type Client struct {
	*provider.Client
	baseURL string

	// Logf, when set, receives diagnostics that don't affect control flow
	// (asset-selection misses, malformed patterns). Nil means silent.
	Logf func(format string, args ...any)
}

// NewClient creates a GitHub API client. Pass an empty token to fall back
// to the GITHUB_TOKEN environment variable; if that is also empty the
// client runs unauthenticated at the API's lower rate limits.
func NewClient(token string) *Client {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": "winget-source/1.0",
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:  provider.NewClient(headers),
		baseURL: "https://api.github.com",
	}
}

// CanHandle reports whether rawURL points at github.com.
func (c *Client) CanHandle(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	return host == "github.com" || host == "www.github.com"
}

// ExtractRepoInfo parses the owner and repository name out of a GitHub URL.
// Matching is case-insensitive; owner and repo are returned lowercased and
// a trailing ".git" is stripped from the repository name.
func (c *Client) ExtractRepoInfo(rawURL string) (owner, repo string, err error) {
	lower := strings.ToLower(rawURL)
	for _, re := range repoURLPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			owner, repo = m[1], m[2]
			repo = strings.TrimSuffix(repo, ".git")
			return owner, repo, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", provider.ErrInvalidURL, rawURL)
}

// LatestRelease resolves the most recent release of the repository at
// rawURL. With opts.IncludePrerelease it takes the newest entry from the
// release list (pre-releases included); otherwise it asks the API for the
// latest stable release. The returned Release's DownloadURL is selected by
// opts.AssetPattern and may be empty when no asset matched.
func (c *Client) LatestRelease(ctx context.Context, rawURL string, opts provider.Options) (*provider.Release, error) {
	owner, repo, err := c.ExtractRepoInfo(rawURL)
	if err != nil {
		return nil, err
	}

	var data *releaseResponse
	if opts.IncludePrerelease {
		data, err = c.fetchNewestRelease(ctx, owner, repo)
	} else {
		data, err = c.fetchStableRelease(ctx, owner, repo)
	}
	if err != nil {
		return nil, err
	}

	return &provider.Release{
		Version:     data.TagName,
		TagName:     data.TagName,
		DownloadURL: selectAsset(data.Assets, opts.AssetPattern, c.logf),
		PublishedAt: data.PublishedAt,
		Notes:       data.Body,
	}, nil
}

func (c *Client) fetchStableRelease(ctx context.Context, owner, repo string) (*releaseResponse, error) {
	var data releaseResponse
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, describeFetchError(err, owner, repo)
	}
	return &data, nil
}

func (c *Client) fetchNewestRelease(ctx context.Context, owner, repo string) (*releaseResponse, error) {
	var data []releaseResponse
	url := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d", c.baseURL, owner, repo, releasePageSize)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, describeFetchError(err, owner, repo)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s/%s has no releases", provider.ErrNotFound, owner, repo)
	}
	// The API orders releases newest-first; trust it.
	return &data[0], nil
}

// describeFetchError attaches the repository to the error so batch output
// identifies which package failed. The sentinel classification is kept
// intact for errors.Is.
func describeFetchError(err error, owner, repo string) error {
	return fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
}

// RepoInfo fetches basic repository metadata (description, stars, primary
// language) for the repository at rawURL.
func (c *Client) RepoInfo(ctx context.Context, rawURL string) (*Repo, error) {
	owner, repo, err := c.ExtractRepoInfo(rawURL)
	if err != nil {
		return nil, err
	}
	var data Repo
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, describeFetchError(err, owner, repo)
	}
	return &data, nil
}

// RateLimit reports the caller's current API quota.
func (c *Client) RateLimit(ctx context.Context) (*RateLimit, error) {
	var data rateLimitResponse
	if err := c.Get(ctx, c.baseURL+"/rate_limit", &data); err != nil {
		return nil, err
	}
	return &data.Rate, nil
}

func (c *Client) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
