package controllers_fx

import (
	"go.uber.org/fx"

	"cityinfo/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCitiesController),
	fx.Provide(controllers.NewPointsOfInterestController),
	fx.Provide(controllers.NewHealthController))
