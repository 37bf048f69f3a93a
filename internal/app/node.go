package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depconflict/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/depconflict/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/depconflict/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/depconflict/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/depconflict/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/depconflict/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/depconflict/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WalkerNodeID,
			manifest.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.ManifestWalker](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, walker, reader, hasher, store, w, log), nil
}
