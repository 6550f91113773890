package renderfx

import (
	"go.uber.org/fx"

	"formflow/internal/forms"
	"formflow/internal/forms/render"
)

var Module = fx.Provide(
	provideRegistry, provideClassifier)

func provideRegistry() *render.Registry {
	return render.NewRegistry()
}

func provideClassifier() *forms.Classifier {
	return forms.DefaultClassifier()
}
