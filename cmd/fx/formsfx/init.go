package formsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"formflow/internal/forms/render"
	"formflow/internal/repositories"
	"formflow/internal/services"
	mem "formflow/pkg/memcache"
)

var Module = fx.Provide(
	provideFormService, provideFormRepo, provideSubmissionRepo, provideMemberRepo)

func provideFormRepo(db *gorm.DB) repositories.FormRepositoryInterface {
	return repositories.NewFormRepository(db)
}

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepositoryInterface {
	return repositories.NewSubmissionRepository(db)
}

func provideMemberRepo(db *gorm.DB) repositories.MemberRepositoryInterface {
	return repositories.NewMemberRepository(db)
}

func provideFormService(
	formRepo repositories.FormRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	cache mem.SchemaCacheStore,
	registry *render.Registry,
) services.FormServiceInterface {
	return services.NewFormService(formRepo, submissionRepo, memberRepo, cache, registry)
}
