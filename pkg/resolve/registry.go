package resolve

import (
	"context"
	"fmt"

	"github.com/LuoDiKaiHua/winget-source/pkg/provider"
	"github.com/LuoDiKaiHua/winget-source/pkg/provider/github"
)

// Registry dispatches resolution requests to the first registered provider
// that recognizes a URL. Registration order decides ties: a provider added
// later never sees URLs an earlier one already claims.
//
// A Registry is safe for concurrent use once construction and registration
// are done; Register is not synchronized against in-flight Resolve calls.
type Registry struct {
	providers []provider.Provider
}

// NewRegistry creates a Registry with the default GitHub provider
// registered. The provider carries no explicit token, so it authenticates
// only if GITHUB_TOKEN is set in the environment.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(github.NewClient(""))
	return r
}

// NewEmptyRegistry creates a Registry with no providers. Callers register
// their own, which keeps tests independent of the default wiring.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register appends p to the provider list. No de-duplication is performed.
func (r *Registry) Register(p provider.Provider) {
	r.providers = append(r.providers, p)
}

// Lookup returns the first registered provider that can handle rawURL,
// or nil if none does.
func (r *Registry) Lookup(rawURL string) provider.Provider {
	for _, p := range r.providers {
		if p.CanHandle(rawURL) {
			return p
		}
	}
	return nil
}

// Resolve finds a provider for rawURL and delegates to its LatestRelease.
// A URL no provider recognizes wraps [provider.ErrNotFound].
func (r *Registry) Resolve(ctx context.Context, rawURL string, opts provider.Options) (*provider.Release, error) {
	p := r.Lookup(rawURL)
	if p == nil {
		return nil, fmt.Errorf("%w: no provider supports %s", provider.ErrNotFound, rawURL)
	}
	return p.LatestRelease(ctx, rawURL, opts)
}
