package repositories

import (
	"context"
	"errors"
	"fmt"

	"cityinfo/internal/models/db_models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errNoRowsAffected = errors.New("no rows affected")

// CityInfoStore hands out request-scoped repositories. It is safe to share
// across goroutines; the repositories it returns are not.
type CityInfoStore interface {
	Begin() CityInfoRepository
}

// CityInfoRepository is a unit of work over cities and points of interest.
// Reads go straight to the database, writes are queued until Save.
type CityInfoRepository interface {
	ListCities(ctx context.Context) ([]db_models.City, error)
	GetCity(ctx context.Context, id int, includePointsOfInterest bool) (*db_models.City, error)
	CityExists(ctx context.Context, id int) (bool, error)

	ListPointsOfInterest(ctx context.Context, cityID int) ([]db_models.PointOfInterest, error)
	GetPointOfInterest(ctx context.Context, cityID, id int) (*db_models.PointOfInterest, error)
	AddPointOfInterest(cityID int, poi *db_models.PointOfInterest)
	DeletePointOfInterest(poi *db_models.PointOfInterest)

	Save(ctx context.Context) (bool, error)
}

type cityInfoStore struct {
	db *gorm.DB
}

func NewCityInfoStore(db *gorm.DB) CityInfoStore {
	return &cityInfoStore{db: db}
}

func (s *cityInfoStore) Begin() CityInfoRepository {
	return &cityInfoRepository{db: s.db}
}

type trackedPointOfInterest struct {
	entity   *db_models.PointOfInterest
	snapshot db_models.PointOfInterest
}

type cityInfoRepository struct {
	db *gorm.DB

	added   []*db_models.PointOfInterest
	deleted []*db_models.PointOfInterest
	tracked []trackedPointOfInterest
}

func (r *cityInfoRepository) ListCities(ctx context.Context) ([]db_models.City, error) {
	var cities []db_models.City
	if err := r.db.WithContext(ctx).Order("name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityInfoRepository) GetCity(ctx context.Context, id int, includePointsOfInterest bool) (*db_models.City, error) {
	var city db_models.City
	q := r.db.WithContext(ctx)
	if includePointsOfInterest {
		q = q.Preload("PointsOfInterest", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}

	err := q.First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityInfoRepository) CityExists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.City{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cityInfoRepository) ListPointsOfInterest(ctx context.Context, cityID int) ([]db_models.PointOfInterest, error) {
	pois := []db_models.PointOfInterest{}
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("id").
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *cityInfoRepository) GetPointOfInterest(ctx context.Context, cityID, id int) (*db_models.PointOfInterest, error) {
	var poi db_models.PointOfInterest
	err := r.db.WithContext(ctx).
		Where("city_id = ? AND id = ?", cityID, id).
		First(&poi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	r.tracked = append(r.tracked, trackedPointOfInterest{entity: &poi, snapshot: poi})
	return &poi, nil
}

func (r *cityInfoRepository) AddPointOfInterest(cityID int, poi *db_models.PointOfInterest) {
	poi.CityID = cityID
	r.added = append(r.added, poi)
}

func (r *cityInfoRepository) DeletePointOfInterest(poi *db_models.PointOfInterest) {
	for i, p := range r.added {
		if p == poi {
			r.added = append(r.added[:i], r.added[i+1:]...)
			return
		}
	}
	r.deleted = append(r.deleted, poi)
}

// Save commits every queued change in one transaction. It reports false when an
// update or delete touched no rows, in which case nothing is committed.
func (r *cityInfoRepository) Save(ctx context.Context) (bool, error) {
	dirty := r.dirty()
	if len(r.added) == 0 && len(r.deleted) == 0 && len(dirty) == 0 {
		return true, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, poi := range r.added {
			if err := tx.Omit(clause.Associations).Create(poi).Error; err != nil {
				return fmt.Errorf("failed to insert point of interest: %w", err)
			}
		}

		for _, t := range dirty {
			result := tx.Model(&db_models.PointOfInterest{}).
				Where("id = ? AND city_id = ?", t.snapshot.ID, t.snapshot.CityID).
				Updates(map[string]interface{}{
					"name":        t.entity.Name,
					"description": t.entity.Description,
					"city_id":     t.entity.CityID,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update point of interest %d: %w", t.snapshot.ID, result.Error)
			}
			if result.RowsAffected == 0 {
				return errNoRowsAffected
			}
		}

		for _, poi := range r.deleted {
			result := tx.Delete(&db_models.PointOfInterest{}, "id = ?", poi.ID)
			if result.Error != nil {
				return fmt.Errorf("failed to delete point of interest %d: %w", poi.ID, result.Error)
			}
			if result.RowsAffected == 0 {
				return errNoRowsAffected
			}
		}
		return nil
	})
	if errors.Is(err, errNoRowsAffected) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	r.accept()
	return true, nil
}

func (r *cityInfoRepository) dirty() []trackedPointOfInterest {
	var out []trackedPointOfInterest
	for _, t := range r.tracked {
		if r.isDeleted(t.entity) {
			continue
		}
		if t.entity.Name != t.snapshot.Name ||
			t.entity.Description != t.snapshot.Description ||
			t.entity.CityID != t.snapshot.CityID {
			out = append(out, t)
		}
	}
	return out
}

func (r *cityInfoRepository) isDeleted(poi *db_models.PointOfInterest) bool {
	for _, d := range r.deleted {
		if d == poi {
			return true
		}
	}
	return false
}

// accept makes the committed state the new baseline for change detection.
func (r *cityInfoRepository) accept() {
	tracked := r.tracked[:0]
	for _, t := range r.tracked {
		if r.isDeleted(t.entity) {
			continue
		}
		tracked = append(tracked, trackedPointOfInterest{entity: t.entity, snapshot: *t.entity})
	}
	for _, poi := range r.added {
		tracked = append(tracked, trackedPointOfInterest{entity: poi, snapshot: *poi})
	}

	r.tracked = tracked
	r.added = nil
	r.deleted = nil
}
