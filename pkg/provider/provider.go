package provider

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a repository has no published release,
	// or when no registered provider recognizes a URL.
	ErrNotFound = errors.New("release not found")

	// ErrForbidden is returned for HTTP 403 responses. It signals a rate
	// limit or authorization problem; control flow treats it like
	// [ErrNotFound], but the message lets operators tell the two apart.
	ErrForbidden = errors.New("rate limited or forbidden")

	// ErrNetwork is returned for transport failures (timeouts, connection
	// errors, malformed responses) and unexpected HTTP statuses.
	ErrNetwork = errors.New("network error")

	// ErrInvalidURL is returned when a URL doesn't match any accepted
	// repository-address shape for the provider.
	ErrInvalidURL = errors.New("invalid repository URL")
)

// Release describes a resolved release of a repository. Values are
// constructed once per successful resolution and never mutated.
type Release struct {
	Version     string // release version, taken from the tag
	TagName     string // git tag the release was published from
	DownloadURL string // direct download URL of the selected asset; empty if none matched
	PublishedAt string // publish timestamp as reported by the API; may be empty
	Notes       string // free-text release notes; may be empty
}

// Options control how a release is resolved for a single package.
type Options struct {
	// IncludePrerelease selects the most recent release even if it is
	// flagged as a pre-release. When false, only the latest stable
	// release is considered.
	IncludePrerelease bool

	// AssetPattern is a case-insensitive regular expression matched
	// against asset filenames to pick a download URL. Empty means no
	// asset selection is attempted.
	AssetPattern string
}

// Provider resolves releases for one hosting service.
type Provider interface {
	// CanHandle reports whether this provider recognizes the URL's host.
	// It performs no I/O and never fails.
	CanHandle(rawURL string) bool

	// ExtractRepoInfo parses the owner and repository name out of a
	// repository URL. It accepts the repository root as well as sub-page
	// and archive-download URL shapes, and strips a trailing ".git".
	// Returns an error wrapping [ErrInvalidURL] if no shape matches.
	ExtractRepoInfo(rawURL string) (owner, repo string, err error)

	// LatestRelease resolves the most recent release of the repository at
	// rawURL. A nil error means the returned Release is fully populated
	// (its DownloadURL may still be empty when no asset matched the
	// pattern). Absence of a release wraps [ErrNotFound].
	LatestRelease(ctx context.Context, rawURL string, opts Options) (*Release, error)
}
