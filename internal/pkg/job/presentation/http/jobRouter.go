package http

import (
	"github.com/gin-gonic/gin"

	"ruralconnect/internal/pkg/job/application/usecase"
	"ruralconnect/internal/pkg/job/persistence/repository/port"
	"ruralconnect/internal/pkg/job/presentation/controller"
)

// RegisterRoutes registers the job board endpoints. The board itself is
// public; posting requires auth.
func RegisterRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc, jobs port.JobRepository) {
	listCtl := controller.NewListJobsController(usecase.NewListJobsUseCase(jobs))
	createCtl := controller.NewCreateJobController(usecase.NewCreateJobUseCase(jobs))

	g.GET("/jobs", listCtl.Handle())
	g.POST("/jobs", authMW, createCtl.Handle())
}
