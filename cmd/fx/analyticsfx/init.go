package analyticsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"formflow/internal/repositories"
	"formflow/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsService, provideAnalyticsRepo)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepositoryInterface {
	return repositories.NewAnalyticsRepository(db)
}

func provideAnalyticsService(
	formRepo repositories.FormRepositoryInterface,
	analyticsRepo repositories.AnalyticsRepositoryInterface,
) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(formRepo, analyticsRepo)
}
