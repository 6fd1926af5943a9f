package services

import (
	"context"
	"fmt"

	"cityinfo/internal/mappers"
	"cityinfo/internal/models/response_models"
	"cityinfo/internal/repositories"
	"cityinfo/pkg/utils"
)

type CitiesServiceInterface interface {
	ListCities(ctx context.Context) ([]response_models.CityWithoutPointsOfInterest, error)
	// GetCity returns a response_models.City when includePointsOfInterest is set
	// and a response_models.CityWithoutPointsOfInterest otherwise.
	GetCity(ctx context.Context, id int, includePointsOfInterest bool) (interface{}, error)
}

type CitiesService struct {
	store repositories.CityInfoStore
}

func NewCitiesService(store repositories.CityInfoStore) CitiesServiceInterface {
	return &CitiesService{store: store}
}

func (s *CitiesService) ListCities(ctx context.Context) ([]response_models.CityWithoutPointsOfInterest, error) {
	cities, err := s.store.Begin().ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list cities: %v", utils.ErrDatabaseError, err)
	}
	return mappers.ToCitiesWithoutPointsOfInterest(cities), nil
}

func (s *CitiesService) GetCity(ctx context.Context, id int, includePointsOfInterest bool) (interface{}, error) {
	city, err := s.store.Begin().GetCity(ctx, id, includePointsOfInterest)
	if err != nil {
		return nil, fmt.Errorf("%w: get city %d: %v", utils.ErrDatabaseError, id, err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	if includePointsOfInterest {
		return mappers.ToCity(city), nil
	}
	return mappers.ToCityWithoutPointsOfInterest(city), nil
}
