// Package app implements the application layer for depconflict.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"go.trai.ch/depconflict/internal/adapters/detector"
	"go.trai.ch/depconflict/internal/adapters/render"
	"go.trai.ch/depconflict/internal/adapters/watcher"
	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/depconflict/internal/engine/analyzer"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	walker         ports.ManifestWalker
	reader         ports.ManifestReader
	hasher         ports.Hasher
	store          ports.SnapshotStore
	watcher        ports.Watcher
	logger         ports.Logger
	stdout         io.Writer
	debounceWindow time.Duration
	now            func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	walker ports.ManifestWalker,
	reader ports.ManifestReader,
	hasher ports.Hasher,
	store ports.SnapshotStore,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader:   loader,
		walker:         walker,
		reader:         reader,
		hasher:         hasher,
		store:          store,
		watcher:        w,
		logger:         log,
		stdout:         os.Stdout,
		debounceWindow: watcher.DefaultDebounceWindow,
		now:            time.Now,
	}
}

// WithOutput sets the stream reports are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounceWindow sets how long watch mode waits for file events to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// WithClock replaces the time source used to stamp snapshots.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ScanOptions holds command line overrides. Nil fields keep the configured value.
type ScanOptions struct {
	// ConfigPath disables config discovery and loads the given file instead.
	ConfigPath         string
	Format             *string
	Color              *string
	Exclude            []string
	DevOverridesDirect *bool
	FailOnConflict     *bool
	Suggest            *bool
	Snapshot           *bool
	FollowSymlinks     *bool
	Concurrency        *int
}

func (o ScanOptions) apply(cfg *domain.Config) {
	setIf(&cfg.Format, o.Format)
	setIf(&cfg.Color, o.Color)
	setIf(&cfg.DevOverridesDirect, o.DevOverridesDirect)
	setIf(&cfg.FailOnConflict, o.FailOnConflict)
	setIf(&cfg.Suggest, o.Suggest)
	setIf(&cfg.Snapshot, o.Snapshot)
	setIf(&cfg.FollowSymlinks, o.FollowSymlinks)
	setIf(&cfg.Concurrency, o.Concurrency)
	if o.Exclude != nil {
		cfg.Exclude = slices.Clone(o.Exclude)
	}
}

func setIf[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Scan analyzes dir, renders the report and returns it.
// When the run is configured to fail on conflicts and any exist, the report is
// returned together with domain.ErrConflictsFound.
func (a *App) Scan(ctx context.Context, dir string, opts ScanOptions) (*domain.Report, error) {
	cfg, err := a.resolveConfig(dir, opts)
	if err != nil {
		return nil, err
	}

	report, err := a.scan(ctx, dir, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.FailOnConflict && report.HasConflicts() {
		return report, domain.ErrConflictsFound
	}
	return report, nil
}

// Watch scans dir once, then re-scans whenever a manifest below it changes.
// It returns when ctx is cancelled. Failures of later scans are logged and do not stop watching.
func (a *App) Watch(ctx context.Context, dir string, opts ScanOptions) error {
	cfg, err := a.resolveConfig(dir, opts)
	if err != nil {
		return err
	}

	report, err := a.scan(ctx, dir, cfg)
	if err != nil {
		return err
	}

	exclude := append(slices.Clone(cfg.Exclude), domain.StateDirName)
	if err := a.watcher.Start(ctx, report.Root, exclude); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		case <-ctx.Done():
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s for manifest changes", report.Root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-changes:
			if inv, ok := a.reader.(invalidator); ok {
				inv.Invalidate(paths)
			}
			a.logger.Info(fmt.Sprintf("%d path(s) changed, rescanning", len(paths)))
			if _, err := a.scan(ctx, dir, cfg); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// invalidator is implemented by manifest readers that cache parsed manifests.
type invalidator interface {
	Invalidate(paths []string)
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

func (a *App) resolveConfig(dir string, opts ScanOptions) (*domain.Config, error) {
	var (
		cfg *domain.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = a.configLoader.Load(dir)
	}
	if err != nil {
		return nil, err
	}

	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(cfg.Format == domain.FormatJSON)
	}
	return cfg, nil
}

// scan runs one analysis, compares it with the last snapshot if enabled, and renders it.
func (a *App) scan(ctx context.Context, dir string, cfg *domain.Config) (*domain.Report, error) {
	renderer, err := render.New(cfg.Format, detector.ResolveColor(cfg.Color, detector.DetectColor(a.stdout)))
	if err != nil {
		return nil, err
	}

	// Conflict paths are reported relative to the working directory; absolute paths are kept without one.
	baseDir, err := os.Getwd()
	if err != nil {
		baseDir = ""
	}

	report, err := analyzer.New(a.walker, a.reader).Analyze(ctx, dir, analyzer.OptionsFromConfig(cfg, baseDir))
	if err != nil {
		return nil, err
	}

	if cfg.Snapshot {
		a.compareSnapshot(report)
	}

	if err := renderer.Render(a.stdout, report); err != nil {
		return nil, err
	}
	return report, nil
}

// compareSnapshot attaches the delta against the previous snapshot and stores the current one.
// Snapshot failures never fail the scan.
func (a *App) compareSnapshot(report *domain.Report) {
	fingerprint := a.hasher.Fingerprint(report.Conflicts)

	previous, err := a.store.Get(report.Root)
	switch {
	case err != nil:
		a.logger.Warn(fmt.Sprintf("ignoring previous snapshot: %v", err))
	case previous != nil:
		report.Delta = previous.Diff(fingerprint, report.Conflicts)
	}

	current := domain.Snapshot{
		Fingerprint: fingerprint,
		CreatedAt:   a.now().UTC(),
		Conflicts:   report.Conflicts,
	}
	if err := a.store.Put(report.Root, current); err != nil {
		a.logger.Warn(fmt.Sprintf("could not save snapshot: %v", err))
	}
}
