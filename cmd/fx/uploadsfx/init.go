package uploadsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"formflow/internal/infra"
	"formflow/internal/repositories"
	"formflow/internal/services"
	mem "formflow/pkg/memcache"
)

var Module = fx.Provide(
	provideUploadService, provideFileRepo, provideFileStore)

func provideFileRepo(db *gorm.DB) repositories.FileRepositoryInterface {
	return repositories.NewFileRepository(db)
}

func provideFileStore() infra.FileStore {
	return infra.NewDiskFileStore()
}

func provideUploadService(
	formRepo repositories.FormRepositoryInterface,
	fileRepo repositories.FileRepositoryInterface,
	store infra.FileStore,
	cache mem.SchemaCacheStore,
) services.UploadServiceInterface {
	return services.NewUploadService(formRepo, fileRepo, store, cache)
}
