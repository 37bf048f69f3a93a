// Package cas implements persistence of scan snapshots below the scanned root.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore with one JSON file per root.
type Store struct{}

// NewStore creates a new snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the snapshot of the previous scan of root.
// Returns nil, nil if no snapshot exists.
func (s *Store) Get(root string) (*domain.Snapshot, error) {
	filename := s.getFilename(root)
	//nolint:gosec // Path is derived from the scanned root
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreReadFailed, err), "path", filename)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreUnmarshalFailed, err), "path", filename)
	}

	return &snapshot, nil
}

// Put stores the snapshot for root, replacing any previous one.
func (s *Store) Put(root string, snapshot domain.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreMarshalFailed, err)
	}

	filename := s.getFilename(root)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreCreateFailed, err), "path", dir)
	}

	// Write to a sibling file first so a crash never leaves a truncated snapshot.
	tmp, err := os.CreateTemp(dir, domain.SnapshotFileName+".*")
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err), "path", filename)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err), "path", filename)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err), "path", filename)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err), "path", filename)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err), "path", filename)
	}

	return nil
}

func (s *Store) getFilename(root string) string {
	return filepath.Join(root, domain.DefaultSnapshotPath())
}
