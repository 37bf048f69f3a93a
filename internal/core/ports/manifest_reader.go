package ports

import "go.trai.ch/depconflict/internal/core/domain"

// ManifestReader loads and parses a single manifest file.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path.
	// Unreadable files and malformed documents are reported as distinct errors.
	Read(path string) (*domain.Manifest, error)
}
