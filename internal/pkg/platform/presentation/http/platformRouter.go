package http

import (
	"github.com/gin-gonic/gin"

	identityPort "ruralconnect/internal/pkg/identity/persistence/repository/port"
	jobPort "ruralconnect/internal/pkg/job/persistence/repository/port"
	"ruralconnect/internal/pkg/platform/application/usecase"
	"ruralconnect/internal/pkg/platform/presentation/controller"
)

// RegisterRoutes mounts the public stats and locations endpoints.
func RegisterRoutes(g *gin.RouterGroup, accounts identityPort.AccountRepository,
	profiles identityPort.ProfileRepository, jobs jobPort.JobRepository) {

	statsCtl := controller.NewStatsController(usecase.NewGetStatsUseCase(accounts, profiles, jobs))
	locationsCtl := controller.NewLocationsController()

	g.GET("/stats", statsCtl.Handle())
	g.GET("/locations", locationsCtl.Handle())
}
