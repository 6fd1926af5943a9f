package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cityinfo/internal/services"
	"cityinfo/pkg/utils"
)

type CitiesController struct {
	citiesService services.CitiesServiceInterface
}

func NewCitiesController(citiesService services.CitiesServiceInterface) *CitiesController {
	return &CitiesController{
		citiesService: citiesService,
	}
}

// GetCities godoc
// @Summary List cities
// @Description Fetch every city without its points of interest
// @Tags Cities
// @Produce json,xml
// @Success 200 {array} response_models.CityWithoutPointsOfInterest
// @Router /api/cities [get]
func (cc *CitiesController) GetCities(c *gin.Context) {
	cities, err := cc.citiesService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get a city
// @Tags Cities
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Param includePointsOfInterest query bool false "Include points of interest (default: false)"
// @Success 200 {object} response_models.City
// @Failure 404
// @Router /api/cities/{cityId} [get]
func (cc *CitiesController) GetCity(c *gin.Context) {
	id, ok := pathID(c, "cityId")
	if !ok {
		return
	}

	include, err := strconv.ParseBool(c.DefaultQuery("includePointsOfInterest", "false"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid includePointsOfInterest value")
		return
	}

	city, err := cc.citiesService.GetCity(c.Request.Context(), id, include)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// pathID reads an integer route parameter. A non-numeric id cannot name a
// resource, so it is answered with 404.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.RespondNotFound(c)
		return 0, false
	}
	return id, true
}
