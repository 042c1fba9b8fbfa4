// Package resolve turns package descriptors into resolved releases.
//
// The [Registry] maps repository URLs onto capable providers (first match
// in registration order wins) and exposes the single Resolve entry point.
// [All] runs a whole manifest's worth of resolutions concurrently, keeping
// results positionally aligned with their descriptors so completion order
// never changes which release belongs to which package.
package resolve
