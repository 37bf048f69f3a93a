package analyzer

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single analysis.
type Options struct {
	Walk        domain.WalkOptions
	Policy      domain.MergePolicy
	Concurrency int
	// BaseDir is the directory conflict paths are reported relative to.
	BaseDir string
	Suggest bool
}

// OptionsFromConfig derives analysis options from a resolved config.
func OptionsFromConfig(cfg *domain.Config, baseDir string) Options {
	return Options{
		Walk: domain.WalkOptions{
			Exclude:      cfg.Exclude,
			SkipSymlinks: !cfg.FollowSymlinks,
		},
		Policy:      cfg.MergePolicy(),
		Concurrency: cfg.Concurrency,
		BaseDir:     baseDir,
		Suggest:     cfg.Suggest,
	}
}

// Analyzer runs the walk, aggregate and detect stages over a directory tree.
type Analyzer struct {
	walker ports.ManifestWalker
	reader ports.ManifestReader
}

// New creates a new Analyzer.
func New(walker ports.ManifestWalker, reader ports.ManifestReader) *Analyzer {
	return &Analyzer{
		walker: walker,
		reader: reader,
	}
}

// Analyze scans root and returns the report. Snapshot comparison is left to the caller.
func (a *Analyzer) Analyze(ctx context.Context, root string, opts Options) (*domain.Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrRootNotFound, err), "root", root)
	}

	paths, err := a.walker.Walk(absRoot, opts.Walk)
	if err != nil {
		return nil, err
	}

	index, err := NewAggregator(a.reader, opts.Policy, opts.Concurrency).Aggregate(ctx, paths)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Root:      absRoot,
		Manifests: paths,
		Index:     index,
		Conflicts: Detect(index, opts.BaseDir),
	}
	if opts.Suggest {
		report.Suggestions = Suggest(report.Conflicts)
	}

	return report, nil
}
