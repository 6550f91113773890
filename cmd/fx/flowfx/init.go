package flowfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"formflow/internal/forms"
	"formflow/internal/forms/render"
	"formflow/internal/repositories"
	"formflow/internal/services"
	mem "formflow/pkg/memcache"
)

var Module = fx.Provide(
	provideFlowService, provideSessionRepo)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepositoryInterface {
	return repositories.NewSessionRepository(db)
}

func provideFlowService(
	formRepo repositories.FormRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	cache mem.SchemaCacheStore,
	registry *render.Registry,
	classifier *forms.Classifier,
) services.FlowServiceInterface {
	return services.NewFlowService(formRepo, sessionRepo, submissionRepo, memberRepo, cache, registry, classifier)
}
