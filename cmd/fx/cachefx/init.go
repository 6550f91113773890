package cachefx

import (
	"go.uber.org/fx"

	mem "formflow/pkg/memcache"
)

var Module = fx.Provide(provideSchemaCache)

func provideSchemaCache() mem.SchemaCacheStore {
	return mem.NewSchemaCache()
}
