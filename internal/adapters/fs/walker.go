// Package fs provides file system adapters for discovering and hashing manifests.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestWalker = (*Walker)(nil)

// Walker provides manifest discovery over the real file system.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk collects every manifest below root in depth-first pre-order.
// Directory entries are visited in lexical order, so repeated walks of an unchanged tree agree.
func (w *Walker) Walk(root string, opts domain.WalkOptions) ([]string, error) {
	paths := make([]string, 0)
	for path, err := range w.WalkManifests(root, opts) {
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WalkManifests yields manifest paths lazily. The walk stops after the first error,
// which is yielded with an empty path.
func (w *Walker) WalkManifests(root string, opts domain.WalkOptions) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				yield("", zerr.With(fmt.Errorf("%w: %w", domain.ErrRootNotFound, err), "root", root))
				return
			}
			yield("", zerr.With(fmt.Errorf("%w: %w", domain.ErrDirectoryReadFailed, err), "path", root))
			return
		}
		if !info.IsDir() {
			yield("", zerr.With(fmt.Errorf("%w", domain.ErrRootNotDirectory), "root", root))
			return
		}

		t := &traversal{
			opts:    opts,
			yield:   yield,
			visited: make(map[string]struct{}),
		}
		if ok, err := t.enter(root); err != nil || !ok {
			if err != nil {
				yield("", err)
			}
			return
		}
		t.walkDir(root)
	}
}

// traversal holds the state of a single walk.
type traversal struct {
	opts    domain.WalkOptions
	yield   func(string, error) bool
	visited map[string]struct{}
}

// walkDir visits dir and its subdirectories.
// It returns false once the consumer stopped or an error was yielded.
func (t *traversal) walkDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.yield("", zerr.With(fmt.Errorf("%w: %w", domain.ErrDirectoryReadFailed, err), "path", dir))
		return false
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if t.isDir(path, entry) {
			if t.opts.Excludes(name) {
				continue
			}
			ok, err := t.enter(path)
			if err != nil {
				t.yield("", err)
				return false
			}
			if !ok {
				continue
			}
			if !t.walkDir(path) {
				return false
			}
			continue
		}

		if name == domain.ManifestFileName {
			if !t.yield(path, nil) {
				return false
			}
		}
	}

	return true
}

// isDir reports whether the entry should be descended into.
// Symlinks count as directories only when they are followed and point at one.
func (t *traversal) isDir(path string, entry iofs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if t.opts.SkipSymlinks || entry.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		// Dangling link, treat it like a file.
		return false
	}
	return info.IsDir()
}

// enter records dir as visited when symlinks are followed.
// It returns false if the canonical directory was already walked.
func (t *traversal) enter(dir string) (bool, error) {
	if t.opts.SkipSymlinks {
		return true, nil
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return false, zerr.With(fmt.Errorf("%w: %w", domain.ErrSymlinkResolveFailed, err), "path", dir)
	}
	if _, seen := t.visited[canonical]; seen {
		return false, nil
	}
	t.visited[canonical] = struct{}{}
	return true, nil
}
