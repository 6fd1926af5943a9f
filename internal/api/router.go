package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cityinfo/internal/api/controllers"
	"cityinfo/internal/config"
	"cityinfo/pkg/middleware"
)

func ProvideRouter(
	cfg *config.Config,
	logger *slog.Logger,
	registry *prometheus.Registry,
	metrics *middleware.HTTPMetrics,
	citiesController *controllers.CitiesController,
	poisController *controllers.PointsOfInterestController,
	healthController *controllers.HealthController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.Middleware())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.GET("/healthz", healthController.Health)

	RegisterRoutes(r, citiesController, poisController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	citiesController *controllers.CitiesController,
	poisController *controllers.PointsOfInterestController) {

	cities := r.Group("/api/cities")
	cities.GET("", citiesController.GetCities)
	cities.GET("/:cityId", citiesController.GetCity)

	pois := cities.Group("/:cityId/pointsofinterest")
	pois.GET("", poisController.GetPointsOfInterest)
	pois.POST("", poisController.CreatePointOfInterest)
	pois.GET("/:id", poisController.GetPointOfInterest)
	pois.PUT("/:id", poisController.UpdatePointOfInterest)
	pois.PATCH("/:id", poisController.PartiallyUpdatePointOfInterest)
	pois.DELETE("/:id", poisController.DeletePointOfInterest)
}
