package infra

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cityinfo/internal/models/db_models"
)

// SeedCities inserts the demo cities when the cities table is empty.
// It reports whether anything was inserted.
func SeedCities(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&db_models.City{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count cities: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	cities := []db_models.City{
		{
			Name:        "New York City",
			Description: "The one with that big park.",
			PointsOfInterest: []db_models.PointOfInterest{
				{Name: "Central Park", Description: "The most visited urban park in the United States."},
				{Name: "Empire State Building", Description: "A 102-story skyscraper located in Midtown Manhattan."},
			},
		},
		{
			Name:        "Antwerp",
			Description: "The one with the cathedral that was never really finished.",
			PointsOfInterest: []db_models.PointOfInterest{
				{Name: "Cathedral of Our Lady", Description: "A Gothic style cathedral, conceived by architects Jan and Pieter Appelmans."},
				{Name: "Antwerp Central Station", Description: "The finest example of railway architecture in Belgium."},
			},
		},
		{
			Name:        "Paris",
			Description: "The one with that big tower.",
			PointsOfInterest: []db_models.PointOfInterest{
				{Name: "Eiffel Tower", Description: "A wrought iron lattice tower on the Champ de Mars, named after engineer Gustave Eiffel."},
				{Name: "The Louvre", Description: "The world's largest museum."},
			},
		},
	}

	if err := db.WithContext(ctx).Create(&cities).Error; err != nil {
		return false, fmt.Errorf("failed to seed cities: %w", err)
	}
	return true, nil
}
