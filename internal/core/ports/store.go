package ports

import "go.trai.ch/depconflict/internal/core/domain"

// SnapshotStore persists the conflicts of the previous scan of a root.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot stored for root.
	// Returns nil, nil if not found.
	Get(root string) (*domain.Snapshot, error)

	// Put stores the snapshot for root.
	Put(root string, snapshot domain.Snapshot) error
}
