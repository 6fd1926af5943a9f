package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cityinfo/internal/infra"
	"cityinfo/pkg/utils"
)

type HealthController struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewHealthController(db *gorm.DB, logger *slog.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := infra.PingDatabase(ctx, h.db); err != nil {
		h.logger.ErrorContext(ctx, "Database ping failed", slog.Any("error", err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	utils.RespondSuccess(c, nil, "ok")
}
