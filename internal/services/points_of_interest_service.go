package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cityinfo/internal/mappers"
	"cityinfo/internal/models/db_models"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/models/response_models"
	"cityinfo/internal/repositories"
	"cityinfo/pkg/utils"
)

type PointsOfInterestServiceInterface interface {
	ListPointsOfInterest(ctx context.Context, cityID int) ([]response_models.PointOfInterest, error)
	GetPointOfInterest(ctx context.Context, cityID, id int) (*response_models.PointOfInterest, error)
	CreatePointOfInterest(ctx context.Context, cityID int, req request_models.PointOfInterestForCreation) (*response_models.PointOfInterest, error)
	UpdatePointOfInterest(ctx context.Context, cityID, id int, req request_models.PointOfInterestForUpdate) error
	PatchPointOfInterest(ctx context.Context, cityID, id int, patch request_models.PatchDocument) error
	DeletePointOfInterest(ctx context.Context, cityID, id int) error
}

type PointsOfInterestService struct {
	store  repositories.CityInfoStore
	mail   IMailService
	logger *slog.Logger
}

func NewPointsOfInterestService(store repositories.CityInfoStore, mail IMailService, logger *slog.Logger) PointsOfInterestServiceInterface {
	return &PointsOfInterestService{
		store:  store,
		mail:   mail,
		logger: logger,
	}
}

func (s *PointsOfInterestService) ListPointsOfInterest(ctx context.Context, cityID int) ([]response_models.PointOfInterest, error) {
	repo := s.store.Begin()
	if err := s.ensureCity(ctx, repo, cityID); err != nil {
		return nil, err
	}

	pois, err := repo.ListPointsOfInterest(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("%w: list points of interest for city %d: %v", utils.ErrDatabaseError, cityID, err)
	}
	return mappers.ToPointsOfInterest(pois), nil
}

func (s *PointsOfInterestService) GetPointOfInterest(ctx context.Context, cityID, id int) (*response_models.PointOfInterest, error) {
	repo := s.store.Begin()
	poi, err := s.findPointOfInterest(ctx, repo, cityID, id)
	if err != nil {
		return nil, err
	}

	res := mappers.ToPointOfInterest(poi)
	return &res, nil
}

func (s *PointsOfInterestService) CreatePointOfInterest(ctx context.Context, cityID int, req request_models.PointOfInterestForCreation) (*response_models.PointOfInterest, error) {
	repo := s.store.Begin()
	if err := s.ensureCity(ctx, repo, cityID); err != nil {
		return nil, err
	}

	poi := mappers.FromPointOfInterestForCreation(req)
	repo.AddPointOfInterest(cityID, &poi)
	if err := save(ctx, repo); err != nil {
		return nil, err
	}

	res := mappers.ToPointOfInterest(&poi)
	return &res, nil
}

func (s *PointsOfInterestService) UpdatePointOfInterest(ctx context.Context, cityID, id int, req request_models.PointOfInterestForUpdate) error {
	repo := s.store.Begin()
	poi, err := s.findPointOfInterest(ctx, repo, cityID, id)
	if err != nil {
		return err
	}

	mappers.ApplyPointOfInterestForUpdate(req, poi)
	return save(ctx, repo)
}

func (s *PointsOfInterestService) PatchPointOfInterest(ctx context.Context, cityID, id int, patch request_models.PatchDocument) error {
	repo := s.store.Begin()
	poi, err := s.findPointOfInterest(ctx, repo, cityID, id)
	if err != nil {
		return err
	}

	toPatch := mappers.ToPointOfInterestForUpdate(poi)
	if err := patch.ApplyTo(&toPatch); err != nil {
		return patchValidationError(err)
	}
	if verr := toPatch.Validate(); verr != nil {
		return verr
	}

	mappers.ApplyPointOfInterestForUpdate(toPatch, poi)
	return save(ctx, repo)
}

func (s *PointsOfInterestService) DeletePointOfInterest(ctx context.Context, cityID, id int) error {
	repo := s.store.Begin()
	poi, err := s.findPointOfInterest(ctx, repo, cityID, id)
	if err != nil {
		return err
	}

	repo.DeletePointOfInterest(poi)
	if err := save(ctx, repo); err != nil {
		return err
	}

	s.notifyDeleted(ctx, *poi)
	return nil
}

// notifyDeleted is fire-and-forget: the request does not wait for delivery.
func (s *PointsOfInterestService) notifyDeleted(ctx context.Context, poi db_models.PointOfInterest) {
	ctx = context.WithoutCancel(ctx)
	subject := "Point of interest deleted."
	message := fmt.Sprintf("Point of interest %s with id %d was deleted.", poi.Name, poi.ID)

	go func() {
		if err := s.mail.Send(ctx, subject, message); err != nil {
			s.logger.ErrorContext(ctx, "Failed to send deletion notification",
				slog.Int("point_of_interest_id", poi.ID), slog.Any("error", err))
		}
	}()
}

func (s *PointsOfInterestService) ensureCity(ctx context.Context, repo repositories.CityInfoRepository, cityID int) error {
	exists, err := repo.CityExists(ctx, cityID)
	if err != nil {
		return fmt.Errorf("%w: check city %d: %v", utils.ErrDatabaseError, cityID, err)
	}
	if !exists {
		s.logger.InfoContext(ctx, "City wasn't found when accessing points of interest", slog.Int("city_id", cityID))
		return utils.ErrCityNotFound
	}
	return nil
}

func (s *PointsOfInterestService) findPointOfInterest(ctx context.Context, repo repositories.CityInfoRepository, cityID, id int) (*db_models.PointOfInterest, error) {
	if err := s.ensureCity(ctx, repo, cityID); err != nil {
		return nil, err
	}

	poi, err := repo.GetPointOfInterest(ctx, cityID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get point of interest %d for city %d: %v", utils.ErrDatabaseError, id, cityID, err)
	}
	if poi == nil {
		return nil, utils.ErrPointOfInterestNotFound
	}
	return poi, nil
}

func save(ctx context.Context, repo repositories.CityInfoRepository) error {
	ok, err := repo.Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: save: %v", utils.ErrDatabaseError, err)
	}
	if !ok {
		return utils.ErrSaveFailed
	}
	return nil
}

func patchValidationError(err error) *utils.ValidationError {
	verr := utils.NewValidationError()
	var perr *request_models.PatchError
	if errors.As(err, &perr) && perr.Field != "" {
		verr.Add(perr.Field, perr.Message)
		return verr
	}
	verr.Add("PointOfInterestForUpdate", err.Error())
	return verr
}
