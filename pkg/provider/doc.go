// Package provider defines the pluggable release-provider contract and the
// shared HTTP plumbing used by its implementations.
//
// # Overview
//
// A [Provider] recognizes repository URLs for one hosting service and
// resolves the latest published release for a repository, optionally
// including pre-releases and selecting a downloadable asset by filename
// pattern. Each hosting service has its own subpackage:
//
//   - [github]: GitHub REST API (the reference implementation)
//
// Providers are looked up through a resolve.Registry, which holds an
// ordered list of providers and dispatches on [Provider.CanHandle].
//
// # Error Conventions
//
// Absence of a release is not exceptional. Providers report it by wrapping
// [ErrNotFound], which callers test with errors.Is:
//
//	rel, err := p.LatestRelease(ctx, url, opts)
//	if errors.Is(err, provider.ErrNotFound) {
//	    // repository has no published release
//	}
//
// HTTP 403 responses wrap [ErrForbidden] so operators can tell rate-limit
// problems apart from ordinary misses; transport faults wrap [ErrNetwork].
// URLs that don't match any accepted repository-address shape wrap
// [ErrInvalidURL]. None of these abort a batch of resolutions.
//
// # Adding a New Provider
//
// To support another hosting service:
//
//  1. Create a subpackage: pkg/provider/<service>/
//  2. Define response structs matching the service's release API
//  3. Implement [Provider] on a client built around [Client]
//  4. Register it on the resolve.Registry used by the caller
//
// [github]: github.com/LuoDiKaiHua/winget-source/pkg/provider/github
package provider
