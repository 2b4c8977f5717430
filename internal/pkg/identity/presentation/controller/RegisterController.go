package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/metrics"
	"ruralconnect/internal/pkg/identity/application/usecase"
	identity "ruralconnect/internal/pkg/identity/domain"
)

// RegisterController handles account registration (one controller per endpoint)
type RegisterController struct {
	UC *usecase.RegisterAccountUseCase
}

func NewRegisterController(uc *usecase.RegisterAccountUseCase) *RegisterController {
	return &RegisterController{UC: uc}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=worker employer"`
}

func (h *RegisterController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		account, err := h.UC.Execute(ctx, usecase.RegisterAccountInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     identity.Role(req.Role),
		})
		if err != nil {
			if errors.Is(err, identity.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{
					"errors": []gin.H{{"field": "email", "message": err.Error()}},
				})
				return
			}
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		metrics.AccountsRegistered.Inc()
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Account created successfully.",
			"account": gin.H{
				"id":    account.ID,
				"name":  account.Name,
				"email": account.Email,
				"role":  account.Role,
			},
		})
	}
}
