package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/pkg/platform/application/usecase"
)

// StatsController serves aggregate platform totals.
type StatsController struct {
	UC *usecase.GetStatsUseCase
}

func NewStatsController(uc *usecase.GetStatsUseCase) *StatsController {
	return &StatsController{UC: uc}
}

func (h *StatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		stats, err := h.UC.Execute(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
