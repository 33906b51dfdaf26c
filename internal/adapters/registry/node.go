package registry

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/adapters/logger"
	"go.trai.ch/leap/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the editor registry Graft node.
const NodeID graft.ID = "adapter.registry"

// configDirEnv overrides the default config directory location.
const configDirEnv = "LEAP_CONFIG_DIR"

const dirPerm = 0o700

func init() {
	graft.Register(graft.Node[ports.EditorRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, cache.NodeID},
		Run: func(ctx context.Context) (ports.EditorRegistry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}

			dir, err := configDir()
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(dir, dirPerm); err != nil {
				return nil, zerr.Wrap(err, "failed to create config directory")
			}
			return NewRegistry(filepath.Join(dir, FileName), store, log)
		},
	})
}

func configDir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve user config directory")
	}
	return filepath.Join(base, "leap"), nil
}
