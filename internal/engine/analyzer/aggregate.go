// Package analyzer aggregates manifests into a dependency index and detects version conflicts.
package analyzer

import (
	"context"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Aggregator parses manifests and merges their dependency requests into an index.
type Aggregator struct {
	reader      ports.ManifestReader
	policy      domain.MergePolicy
	concurrency int
}

// NewAggregator creates an Aggregator. A concurrency of zero or less leaves parsing unbounded.
func NewAggregator(reader ports.ManifestReader, policy domain.MergePolicy, concurrency int) *Aggregator {
	return &Aggregator{
		reader:      reader,
		policy:      policy,
		concurrency: concurrency,
	}
}

// Aggregate reads every manifest in paths and builds the dependency index.
//
// Manifests are parsed concurrently but merged in the order of paths, so the index does not
// depend on scheduling. If any manifest fails, the failure of the earliest path is returned.
func (a *Aggregator) Aggregate(ctx context.Context, paths []string) (*domain.DependencyIndex, error) {
	manifests, err := a.readAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	index := domain.NewDependencyIndex()
	for _, m := range manifests {
		index.AddManifest(m, a.policy)
	}
	return index, nil
}

func (a *Aggregator) readAll(ctx context.Context, paths []string) ([]*domain.Manifest, error) {
	manifests := make([]*domain.Manifest, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Failures are collected per slot instead of cancelling siblings,
			// so the reported error is always that of the earliest path.
			manifests[i], errs[i] = a.reader.Read(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return manifests, nil
}
