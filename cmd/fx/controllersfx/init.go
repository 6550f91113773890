package controllersfx

import (
	"go.uber.org/fx"

	"formflow/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewFormsController),
	fx.Provide(controllers.NewPagesController),
	fx.Provide(controllers.NewFlowController),
	fx.Provide(controllers.NewUploadsController),
	fx.Provide(controllers.NewAnalyticsController))
