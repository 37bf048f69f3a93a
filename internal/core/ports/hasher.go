package ports

import "go.trai.ch/depconflict/internal/core/domain"

// Hasher defines the interface for computing content hashes and fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashContent returns the hash of raw file content.
	HashContent(data []byte) uint64
	// Fingerprint returns a stable hex digest of a conflict list.
	Fingerprint(conflicts []domain.ConflictEntry) string
}
