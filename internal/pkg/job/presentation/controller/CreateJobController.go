package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/auth"
	"ruralconnect/internal/pkg/job/application/usecase"
)

// CreateJobController posts a new job under the caller's account.
type CreateJobController struct {
	UC *usecase.CreateJobUseCase
}

func NewCreateJobController(uc *usecase.CreateJobUseCase) *CreateJobController {
	return &CreateJobController{UC: uc}
}

type createJobRequest struct {
	Skill       string    `json:"skill" binding:"required"`
	Village     string    `json:"village"`
	Location    string    `json:"location" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Budget      *float64  `json:"budget"`
}

func (h *CreateJobController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createJobRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		j, err := h.UC.Execute(ctx, usecase.CreateJobInput{
			PosterID:    claims.AccountID,
			Skill:       req.Skill,
			Village:     req.Village,
			Location:    req.Location,
			Date:        req.Date,
			Time:        req.Time,
			Description: req.Description,
			Budget:      req.Budget,
		})
		if err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save job"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":          j.ID,
			"skill":       j.Skill,
			"village":     j.Village,
			"location":    j.Location,
			"date":        j.Date,
			"time":        j.Time,
			"description": j.Description,
			"budget":      j.Budget,
			"status":      j.Status,
			"postedBy":    j.PostedBy,
			"createdAt":   j.CreatedAt,
		})
	}
}
