package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depconflict/internal/adapters/fs"
	"go.trai.ch/depconflict/internal/core/ports"
)

// NodeID is the unique identifier for the manifest reader Graft node.
const NodeID graft.ID = "adapter.manifest_reader"

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ManifestReader, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewCachingReader(hasher, DefaultCacheSize)
		},
	})
}
