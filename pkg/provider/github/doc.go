// Package github implements the release provider for repositories hosted
// on github.com, using the GitHub REST API (v3).
//
// The [Client] recognizes github.com URLs in several shapes (repository
// root, tree/blob/releases sub-pages, archive links), resolves either the
// latest stable release or the newest release including pre-releases, and
// picks a download asset by filename pattern. It also exposes the
// repository-metadata and rate-limit endpoints for diagnostics.
//
// Authentication is an optional bearer token, read from the constructor
// argument or the GITHUB_TOKEN environment variable. Without a token the
// client works at the API's unauthenticated rate limits.
package github
