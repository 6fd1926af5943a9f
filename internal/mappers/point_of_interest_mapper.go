package mappers

import (
	"cityinfo/internal/models/db_models"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/models/response_models"
)

func ToPointOfInterest(poi *db_models.PointOfInterest) response_models.PointOfInterest {
	return response_models.PointOfInterest{
		ID:          poi.ID,
		Name:        poi.Name,
		Description: poi.Description,
	}
}

func ToPointsOfInterest(pois []db_models.PointOfInterest) []response_models.PointOfInterest {
	out := make([]response_models.PointOfInterest, 0, len(pois))
	for i := range pois {
		out = append(out, ToPointOfInterest(&pois[i]))
	}
	return out
}

func FromPointOfInterest(dto response_models.PointOfInterest) db_models.PointOfInterest {
	return db_models.PointOfInterest{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
	}
}

func FromPointOfInterestForCreation(dto request_models.PointOfInterestForCreation) db_models.PointOfInterest {
	return db_models.PointOfInterest{
		Name:        dto.Name,
		Description: dto.Description,
	}
}

func ToPointOfInterestForUpdate(poi *db_models.PointOfInterest) request_models.PointOfInterestForUpdate {
	return request_models.PointOfInterestForUpdate{
		Name:        poi.Name,
		Description: poi.Description,
	}
}

// ApplyPointOfInterestForUpdate copies the updatable fields onto an existing entity.
// Identity and ownership are left untouched.
func ApplyPointOfInterestForUpdate(dto request_models.PointOfInterestForUpdate, poi *db_models.PointOfInterest) {
	poi.Name = dto.Name
	poi.Description = dto.Description
}
