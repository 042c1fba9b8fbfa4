package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/LuoDiKaiHua/winget-source/pkg/manifest"
	"github.com/LuoDiKaiHua/winget-source/pkg/provider"
)

// maxConcurrent caps how many resolutions run at once. Each resolution is
// a couple of short GET requests, so a small bound keeps bursts polite
// toward the API without serializing the batch.
const maxConcurrent = 8

// Result pairs a package descriptor with the outcome of its resolution.
// Exactly one of Release and Err is meaningful: a nil Err guarantees a
// populated Release.
type Result struct {
	Package manifest.Package
	Release *provider.Release
	Err     error
}

// All resolves every package concurrently and returns results in the same
// order as the input. One package's failure never affects another's
// resolution; per-package errors are reported in the Result, and All only
// returns an error when ctx is cancelled before the batch completes.
func All(ctx context.Context, reg *Registry, packages []manifest.Package) ([]Result, error) {
	results := make([]Result, len(packages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, pkg := range packages {
		i, pkg := i, pkg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rel, err := reg.Resolve(ctx, pkg.URL, provider.Options{
				IncludePrerelease: pkg.IncludePrerelease,
				AssetPattern:      pkg.Pattern,
			})
			if err != nil && ctx.Err() != nil {
				// Abandoned mid-flight; report cancellation, not a fake miss.
				return ctx.Err()
			}
			results[i] = Result{Package: pkg, Release: rel, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
