package http

import (
	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/auth"
	"ruralconnect/internal/infrastructure/realtime"
	"ruralconnect/internal/pkg/conversation/application/usecase"
	"ruralconnect/internal/pkg/conversation/presentation/controller"
)

// RegisterRoutes registers chat-related HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc, tokens *auth.TokenManager, registry *realtime.Registry,
	sendUC *usecase.SendMessageUseCase, getUC *usecase.GetConversationUseCase, listUC *usecase.ListConversationsUseCase) {

	workerCtl := controller.NewGetWorkerConversationController(getUC)
	accountCtl := controller.NewGetAccountConversationController(getUC)
	sendCtl := controller.NewSendMessageController(sendUC)
	listCtl := controller.NewListConversationsController(listUC)
	socketCtl := controller.NewChatSocketController(tokens, registry, sendUC)

	// GET /api/v1/chat/ws -> websocket endpoint; the handshake itself carries
	// the token, so the REST middleware is not applied here.
	g.GET("/chat/ws", socketCtl.Handle())

	authed := g.Group("", authMW)

	// GET /api/v1/chat/worker/:workerId -> history with a worker profile
	authed.GET("/chat/worker/:workerId", workerCtl.Handle())

	// GET /api/v1/chat/account/:accountId -> history with an account
	authed.GET("/chat/account/:accountId", accountCtl.Handle())

	// POST /api/v1/chat/send -> persist and route a message
	authed.POST("/chat/send", sendCtl.Handle())

	// GET /api/v1/chat/conversations -> conversation list, most recent first
	authed.GET("/chat/conversations", listCtl.Handle())
}
