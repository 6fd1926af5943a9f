package controllers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cityinfo/internal/models/request_models"
	"cityinfo/internal/services"
	"cityinfo/pkg/utils"
)

type PointsOfInterestController struct {
	poiService services.PointsOfInterestServiceInterface
	logger     *slog.Logger
}

func NewPointsOfInterestController(poiService services.PointsOfInterestServiceInterface, logger *slog.Logger) *PointsOfInterestController {
	return &PointsOfInterestController{
		poiService: poiService,
		logger:     logger,
	}
}

// GetPointsOfInterest godoc
// @Summary List the points of interest of a city
// @Tags PointsOfInterest
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Success 200 {array} response_models.PointOfInterest
// @Failure 404
// @Failure 500 {object} utils.APIResponse
// @Router /api/cities/{cityId}/pointsofinterest [get]
func (p *PointsOfInterestController) GetPointsOfInterest(c *gin.Context) {
	cityID, ok := pathID(c, "cityId")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "Exception while getting points of interest for city",
				slog.Int("city_id", cityID), slog.Any("panic", r))
			utils.RespondError(c, http.StatusInternalServerError, utils.ProblemMessage)
		}
	}()

	pois, err := p.poiService.ListPointsOfInterest(ctx, cityID)
	if err != nil {
		if errors.Is(err, utils.ErrCityNotFound) {
			utils.RespondNotFound(c)
			return
		}
		p.logger.ErrorContext(ctx, "Exception while getting points of interest for city",
			slog.Int("city_id", cityID), slog.Any("error", err))
		utils.RespondError(c, http.StatusInternalServerError, utils.ProblemMessage)
		return
	}

	utils.RespondSuccess(c, pois, "Points of interest fetched successfully")
}

// GetPointOfInterest godoc
// @Summary Get a point of interest
// @Tags PointsOfInterest
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Param id path int true "Point of interest ID"
// @Success 200 {object} response_models.PointOfInterest
// @Failure 404
// @Router /api/cities/{cityId}/pointsofinterest/{id} [get]
func (p *PointsOfInterestController) GetPointOfInterest(c *gin.Context) {
	cityID, id, ok := pointOfInterestIDs(c)
	if !ok {
		return
	}

	poi, err := p.poiService.GetPointOfInterest(c.Request.Context(), cityID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "Point of interest fetched successfully")
}

// CreatePointOfInterest godoc
// @Summary Create a point of interest
// @Tags PointsOfInterest
// @Accept json
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Param request body request_models.PointOfInterestForCreation true "Point of interest"
// @Success 201 {object} response_models.PointOfInterest
// @Failure 400 {object} utils.APIResponse
// @Failure 404
// @Router /api/cities/{cityId}/pointsofinterest [post]
func (p *PointsOfInterestController) CreatePointOfInterest(c *gin.Context) {
	cityID, ok := pathID(c, "cityId")
	if !ok {
		return
	}

	var req request_models.PointOfInterestForCreation
	if !bindValidated(c, &req) {
		return
	}

	created, err := p.poiService.CreatePointOfInterest(c.Request.Context(), cityID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := fmt.Sprintf("/api/cities/%d/pointsofinterest/%d", cityID, created.ID)
	utils.RespondCreated(c, location, created, "Point of interest created successfully")
}

// UpdatePointOfInterest godoc
// @Summary Replace a point of interest
// @Tags PointsOfInterest
// @Accept json
// @Param cityId path int true "City ID"
// @Param id path int true "Point of interest ID"
// @Param request body request_models.PointOfInterestForUpdate true "Point of interest"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404
// @Router /api/cities/{cityId}/pointsofinterest/{id} [put]
func (p *PointsOfInterestController) UpdatePointOfInterest(c *gin.Context) {
	cityID, id, ok := pointOfInterestIDs(c)
	if !ok {
		return
	}

	var req request_models.PointOfInterestForUpdate
	if !bindValidated(c, &req) {
		return
	}

	if err := p.poiService.UpdatePointOfInterest(c.Request.Context(), cityID, id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// PartiallyUpdatePointOfInterest godoc
// @Summary Patch a point of interest
// @Description Applies an ordered list of operations (add, replace, remove, test) on /name and /description
// @Tags PointsOfInterest
// @Accept json
// @Param cityId path int true "City ID"
// @Param id path int true "Point of interest ID"
// @Param request body request_models.PatchDocument true "Patch document"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404
// @Router /api/cities/{cityId}/pointsofinterest/{id} [patch]
func (p *PointsOfInterestController) PartiallyUpdatePointOfInterest(c *gin.Context) {
	cityID, id, ok := pointOfInterestIDs(c)
	if !ok {
		return
	}

	var patch request_models.PatchDocument
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}
	if patch == nil {
		utils.HandleServiceError(c, utils.ErrMissingBody)
		return
	}

	if err := p.poiService.PatchPointOfInterest(c.Request.Context(), cityID, id, patch); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// DeletePointOfInterest godoc
// @Summary Delete a point of interest
// @Tags PointsOfInterest
// @Param cityId path int true "City ID"
// @Param id path int true "Point of interest ID"
// @Success 204
// @Failure 404
// @Router /api/cities/{cityId}/pointsofinterest/{id} [delete]
func (p *PointsOfInterestController) DeletePointOfInterest(c *gin.Context) {
	cityID, id, ok := pointOfInterestIDs(c)
	if !ok {
		return
	}

	if err := p.poiService.DeletePointOfInterest(c.Request.Context(), cityID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

func pointOfInterestIDs(c *gin.Context) (int, int, bool) {
	cityID, ok := pathID(c, "cityId")
	if !ok {
		return 0, 0, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return 0, 0, false
	}
	return cityID, id, true
}

type ruleChecker interface {
	CheckRules(verr *utils.ValidationError)
}

// bindValidated decodes the body into req and collects tag and rule failures
// together, so the client sees every problem at once.
func bindValidated(c *gin.Context, req ruleChecker) bool {
	verr := utils.NewValidationError()
	if err := c.ShouldBindJSON(req); err != nil {
		if !verr.AddValidatorErrors(err) {
			respondBindError(c, err)
			return false
		}
	}

	req.CheckRules(verr)
	if verr.HasErrors() {
		utils.RespondValidationError(c, verr)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	if errors.Is(err, io.EOF) {
		utils.HandleServiceError(c, utils.ErrMissingBody)
		return
	}
	utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
}
