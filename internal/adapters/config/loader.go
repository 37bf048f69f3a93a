// Package config provides the configuration loader for depconflict.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs     FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader reading from the real file system.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(NewOSFS(), logger)
}

// NewLoaderWithFS creates a new Loader over the given file system.
func NewLoaderWithFS(fsys FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load looks for .depconflict.yaml in dir and its parents.
// The defaults are returned when no file is found.
func (l *Loader) Load(dir string) (*domain.Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "dir", dir)
	}

	path, found := l.findConfiguration(absDir)
	if !found {
		return domain.DefaultConfig(), nil
	}
	return l.LoadFile(path)
}

// LoadFile reads the config file at path and overlays it on the defaults.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "path", path)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		l.logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, file.Version, SchemaVersion))
	}

	cfg := domain.DefaultConfig()
	file.apply(cfg)
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(dir string) (string, bool) {
	current := dir
	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}
