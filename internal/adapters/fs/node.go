package fs

import (
	"context"
	"io/fs"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/adapters/config"
	"go.trai.ch/desk/internal/assets"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"

	// LocatorNodeID is the unique identifier for the resource locator Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
)

func init() {
	// Walker Node (Concrete implementation needed by Locator)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Locator Node
	graft.Register(graft.Node[ports.ResourceLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ResourceLocator, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(viewsRoot(settings), walker), nil
		},
	})
}

// viewsRoot returns the configured views directory or the embedded views.
func viewsRoot(settings *domain.Settings) fs.FS {
	if settings.Views.Dir != "" {
		return os.DirFS(settings.Views.Dir)
	}
	return assets.Views()
}
