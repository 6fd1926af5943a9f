package mappers

import (
	"cityinfo/internal/models/db_models"
	"cityinfo/internal/models/response_models"
)

func ToCityWithoutPointsOfInterest(city *db_models.City) response_models.CityWithoutPointsOfInterest {
	return response_models.CityWithoutPointsOfInterest{
		ID:          city.ID,
		Name:        city.Name,
		Description: city.Description,
	}
}

func ToCitiesWithoutPointsOfInterest(cities []db_models.City) []response_models.CityWithoutPointsOfInterest {
	out := make([]response_models.CityWithoutPointsOfInterest, 0, len(cities))
	for i := range cities {
		out = append(out, ToCityWithoutPointsOfInterest(&cities[i]))
	}
	return out
}

// ToCity includes the nested points of interest that were loaded with the city.
func ToCity(city *db_models.City) response_models.City {
	pois := ToPointsOfInterest(city.PointsOfInterest)
	return response_models.City{
		ID:                       city.ID,
		Name:                     city.Name,
		Description:              city.Description,
		NumberOfPointsOfInterest: len(pois),
		PointsOfInterest:         pois,
	}
}

func FromCityWithoutPointsOfInterest(dto response_models.CityWithoutPointsOfInterest) db_models.City {
	return db_models.City{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
	}
}

func FromCity(dto response_models.City) db_models.City {
	city := db_models.City{
		ID:               dto.ID,
		Name:             dto.Name,
		Description:      dto.Description,
		PointsOfInterest: make([]db_models.PointOfInterest, 0, len(dto.PointsOfInterest)),
	}
	for _, p := range dto.PointsOfInterest {
		poi := FromPointOfInterest(p)
		poi.CityID = dto.ID
		city.PointsOfInterest = append(city.PointsOfInterest, poi)
	}
	return city
}
