package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/auth"
	identity "ruralconnect/internal/pkg/identity/domain"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

// MeController returns the authenticated caller's account.
type MeController struct {
	Accounts repository.AccountRepository
}

func NewMeController(accounts repository.AccountRepository) *MeController {
	return &MeController{Accounts: accounts}
}

func (h *MeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		account, err := h.Accounts.GetByID(ctx, claims.AccountID)
		if err != nil {
			if errors.Is(err, identity.ErrAccountNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load account"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":        account.ID,
				"name":      account.Name,
				"email":     account.Email,
				"role":      account.Role,
				"createdAt": account.CreatedAt,
			},
		})
	}
}
