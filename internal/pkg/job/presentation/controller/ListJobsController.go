package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/pkg/job/application/usecase"
	job "ruralconnect/internal/pkg/job/domain"
	"ruralconnect/internal/pkg/job/persistence/repository/port"
)

// ListJobsController serves the public job board, newest first.
type ListJobsController struct {
	UC *usecase.ListJobsUseCase
}

func NewListJobsController(uc *usecase.ListJobsUseCase) *ListJobsController {
	return &ListJobsController{UC: uc}
}

func (h *ListJobsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		postings, err := h.UC.Execute(ctx, port.JobFilter{
			Status:   c.Query("status"),
			Skill:    c.Query("skill"),
			Location: c.Query("location"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load jobs"})
			return
		}

		out := make([]gin.H, 0, len(postings))
		for _, p := range postings {
			out = append(out, postingJSON(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func postingJSON(p job.Posting) gin.H {
	return gin.H{
		"id":          p.ID,
		"skill":       p.Skill,
		"village":     p.Village,
		"location":    p.Location,
		"date":        p.Date,
		"time":        p.Time,
		"description": p.Description,
		"budget":      p.Budget,
		"status":      p.Status,
		"postedBy": gin.H{
			"id":    p.PostedBy,
			"name":  p.PostedByName,
			"email": p.PostedByEmail,
		},
		"createdAt": p.CreatedAt,
	}
}
