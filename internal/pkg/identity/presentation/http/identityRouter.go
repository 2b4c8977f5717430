package http

import (
	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/auth"
	"ruralconnect/internal/pkg/identity/application/usecase"
	"ruralconnect/internal/pkg/identity/presentation/controller"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

// RegisterRoutes registers auth and worker-directory endpoints under the
// given router group.
func RegisterRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc, tokens *auth.TokenManager,
	accounts repository.AccountRepository, profiles repository.ProfileRepository) {

	registerCtl := controller.NewRegisterController(usecase.NewRegisterAccountUseCase(accounts))
	loginCtl := controller.NewLoginController(usecase.NewLoginUseCase(accounts, tokens))
	meCtl := controller.NewMeController(accounts)
	listWorkersCtl := controller.NewListWorkersController(usecase.NewSearchWorkersUseCase(profiles))
	getWorkerCtl := controller.NewGetWorkerController(profiles)
	createWorkerCtl := controller.NewCreateWorkerController(usecase.NewCreateWorkerProfileUseCase(profiles))

	// POST /api/v1/auth/register -> create an account
	g.POST("/auth/register", registerCtl.Handle())

	// POST /api/v1/auth/login -> issue a token
	g.POST("/auth/login", loginCtl.Handle())

	// GET /api/v1/auth/me -> the caller's account
	g.GET("/auth/me", authMW, meCtl.Handle())

	// The directory is public; creating a listing requires auth.
	g.GET("/workers", listWorkersCtl.Handle())
	g.GET("/workers/:id", getWorkerCtl.Handle())
	g.POST("/workers", authMW, createWorkerCtl.Handle())
}
