package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides XXHash based content hashes and conflict fingerprints.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashContent computes the XXHash of raw content.
func (h *Hasher) HashContent(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint computes a single hash representing a conflict list.
// Order matters: the same conflicts in a different order produce a different fingerprint.
func (h *Hasher) Fingerprint(conflicts []domain.ConflictEntry) string {
	hasher := xxhash.New()

	for _, conflict := range conflicts {
		_, _ = hasher.WriteString(conflict.Package)
		_, _ = hasher.Write([]byte{0}) // Separator

		for _, usage := range conflict.Versions {
			_, _ = hasher.WriteString(usage.Version)
			_, _ = hasher.Write([]byte{0})

			for _, path := range usage.UsedBy {
				_, _ = hasher.WriteString(path)
				_, _ = hasher.Write([]byte{0})
			}
			_, _ = hasher.Write([]byte{0}) // Section separator
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
