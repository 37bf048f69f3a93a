// Package manifest reads package.json documents into domain manifests.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	keyName            = "name"
	keyDependencies    = "dependencies"
	keyDevDependencies = "devDependencies"
)

var (
	errNotObject        = zerr.New("manifest is not a JSON object")
	errSectionNotObject = zerr.New("dependency section is not an object")
	errVersionNotString = zerr.New("dependency version is not a string")
	errTrailingData     = zerr.New("unexpected data after manifest object")
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader reads manifests straight from disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read loads and parses the manifest at path.
func (r *Reader) Read(path string) (*domain.Manifest, error) {
	//nolint:gosec // Path comes from the manifest walker
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrManifestReadFailed, err), "path", path)
	}
	return Parse(path, data)
}

// Parse decodes manifest content read from path.
// Dependency sections keep the key order of the document; a missing or null section is empty.
func Parse(path string, data []byte) (*domain.Manifest, error) {
	m, err := decode(data)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrManifestParseFailed, err), "path", path)
	}
	m.Path = path
	return m, nil
}

func decode(data []byte) (*domain.Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{', errNotObject); err != nil {
		return nil, err
	}

	m := &domain.Manifest{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		switch key {
		case keyName:
			var name any
			if err := dec.Decode(&name); err != nil {
				return nil, err
			}
			// A non-string name is informational only and ignored.
			m.Name, _ = name.(string)
		case keyDependencies:
			if m.Dependencies, err = decodeSection(dec, key); err != nil {
				return nil, err
			}
		case keyDevDependencies:
			if m.DevDependencies, err = decodeSection(dec, key); err != nil {
				return nil, err
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingData
	}

	return m, nil
}

// decodeSection reads one dependency object, preserving key order.
func decodeSection(dec *json.Decoder, section string) ([]domain.Dependency, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, zerr.With(errSectionNotObject, "section", section)
	}

	deps := make([]domain.Dependency, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		version, ok := valTok.(string)
		if !ok {
			return nil, zerr.With(zerr.With(errVersionNotString, "section", section), "package", name)
		}
		deps = append(deps, domain.Dependency{Name: name, Version: version})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return deps, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, mismatch error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return mismatch
	}
	return nil
}
