package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/auth"
	"ruralconnect/internal/pkg/conversation/application/usecase"
)

// ListConversationsController serves the conversation list for the caller.
type ListConversationsController struct {
	UC *usecase.ListConversationsUseCase
}

func NewListConversationsController(uc *usecase.ListConversationsUseCase) *ListConversationsController {
	return &ListConversationsController{UC: uc}
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		summaries, err := h.UC.Execute(ctx, claims.AccountID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversations"})
			return
		}

		c.JSON(http.StatusOK, summaries)
	}
}
