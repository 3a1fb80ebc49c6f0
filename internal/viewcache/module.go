package viewcache

import (
	"go.uber.org/fx"

	"github.com/invoicehub/invoicehub/internal/config"
)

// Module provides the dashboard view cache.
var Module = fx.Provide(newCache)

type cacheParams struct {
	fx.In

	Config *config.Config
}

func newCache(p cacheParams) (*Cache, error) {
	return New(p.Config.ViewCacheSize)
}
