package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"ruralconnect/internal/infrastructure/auth"
	cacheport "ruralconnect/internal/infrastructure/cache/port"
	qport "ruralconnect/internal/infrastructure/queue/port"
	"ruralconnect/internal/infrastructure/realtime"
	conversationHTTP "ruralconnect/internal/pkg/conversation/presentation/http"
	conversationAdapter "ruralconnect/internal/pkg/conversation/persistence/repository/adapter"
	conversationUC "ruralconnect/internal/pkg/conversation/application/usecase"
	identityHTTP "ruralconnect/internal/pkg/identity/presentation/http"
	identityAdapter "ruralconnect/internal/pkg/identity/persistence/repository/adapter"
	jobHTTP "ruralconnect/internal/pkg/job/presentation/http"
	jobAdapter "ruralconnect/internal/pkg/job/persistence/repository/adapter"
	platformHTTP "ruralconnect/internal/pkg/platform/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1. The queue
// client and cache may be nil; the affected features degrade quietly.
func RegisterRoutes(r *gin.Engine, pool *pgxpool.Pool, tokens *auth.TokenManager,
	registry *realtime.Registry, queue qport.Client, cache cacheport.Cache) {

	accounts := identityAdapter.NewPgAccountRepository(pool)
	profiles := identityAdapter.NewPgProfileRepository(pool)
	messages := conversationAdapter.NewPgMessageRepository(pool)
	jobs := jobAdapter.NewPgJobRepository(pool)

	resolver := conversationUC.NewResolvePartnerUseCase(accounts, profiles)
	sendUC := conversationUC.NewSendMessageUseCase(messages, resolver, realtime.NewRouter(registry))
	sendUC.Queue = queue
	sendUC.Cache = cache
	getUC := conversationUC.NewGetConversationUseCase(messages, resolver)
	listUC := conversationUC.NewListConversationsUseCase(messages, accounts)
	listUC.Cache = cache

	authMW := auth.Middleware(tokens)

	v1 := r.Group("/api/v1")
	identityHTTP.RegisterRoutes(v1, authMW, tokens, accounts, profiles)
	conversationHTTP.RegisterRoutes(v1, authMW, tokens, registry, sendUC, getUC, listUC)
	jobHTTP.RegisterRoutes(v1, authMW, jobs)
	platformHTTP.RegisterRoutes(v1, accounts, profiles, jobs)
}
