package ports

import "go.trai.ch/depconflict/internal/core/domain"

// ManifestWalker discovers manifest files below a root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type ManifestWalker interface {
	// Walk returns every manifest path below root in depth-first pre-order.
	// It fails if root does not exist or a directory cannot be read.
	Walk(root string, opts domain.WalkOptions) ([]string, error)
}
