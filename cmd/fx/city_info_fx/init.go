package city_info_fx

import (
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"cityinfo/internal/repositories"
	"cityinfo/internal/services"
)

var Module = fx.Provide(
	provideCityInfoStore, provideCitiesService, providePointsOfInterestService)

func provideCityInfoStore(db *gorm.DB) repositories.CityInfoStore {
	return repositories.NewCityInfoStore(db)
}

func provideCitiesService(store repositories.CityInfoStore) services.CitiesServiceInterface {
	return services.NewCitiesService(store)
}

func providePointsOfInterestService(
	store repositories.CityInfoStore,
	mail services.IMailService,
	logger *slog.Logger,
) services.PointsOfInterestServiceInterface {
	return services.NewPointsOfInterestService(store, mail, logger)
}
