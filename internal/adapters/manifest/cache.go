package manifest

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize is the number of parsed manifests kept by a CachingReader.
const DefaultCacheSize = 4096

type cachedManifest struct {
	hash     uint64
	manifest *domain.Manifest
}

var _ ports.ManifestReader = (*CachingReader)(nil)

// CachingReader reads manifests from disk and reuses the parsed result while the content hash is unchanged.
// Cached manifests are shared between callers and must be treated as read-only.
type CachingReader struct {
	hasher ports.Hasher
	cache  *lru.Cache[string, cachedManifest]
}

// NewCachingReader creates a CachingReader holding up to size parsed manifests.
func NewCachingReader(hasher ports.Hasher, size int) (*CachingReader, error) {
	cache, err := lru.New[string, cachedManifest](size)
	if err != nil {
		return nil, err
	}
	return &CachingReader{
		hasher: hasher,
		cache:  cache,
	}, nil
}

// Read returns the manifest at path, parsing it only when its content changed since the last read.
func (r *CachingReader) Read(path string) (*domain.Manifest, error) {
	//nolint:gosec // Path comes from the manifest walker
	data, err := os.ReadFile(path)
	if err != nil {
		r.cache.Remove(path)
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrManifestReadFailed, err), "path", path)
	}

	hash := r.hasher.HashContent(data)
	if entry, ok := r.cache.Get(path); ok && entry.hash == hash {
		return entry.manifest, nil
	}

	m, err := Parse(path, data)
	if err != nil {
		r.cache.Remove(path)
		return nil, err
	}

	r.cache.Add(path, cachedManifest{hash: hash, manifest: m})
	return m, nil
}

// Invalidate drops cached entries for the given paths.
func (r *CachingReader) Invalidate(paths []string) {
	for _, path := range paths {
		r.cache.Remove(path)
	}
}

// Len returns the number of cached manifests.
func (r *CachingReader) Len() int {
	return r.cache.Len()
}
