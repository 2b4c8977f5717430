package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/pkg/identity/application/usecase"
)

// LoginController issues access tokens for valid credentials.
type LoginController struct {
	UC *usecase.LoginUseCase
}

func NewLoginController(uc *usecase.LoginUseCase) *LoginController {
	return &LoginController{UC: uc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.LoginInput{Email: req.Email, Password: req.Password})
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": out.Token,
			"user": gin.H{
				"id":    out.Account.ID,
				"name":  out.Account.Name,
				"email": out.Account.Email,
				"role":  out.Account.Role,
			},
		})
	}
}
