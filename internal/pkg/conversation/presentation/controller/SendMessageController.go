package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/auth"
	"ruralconnect/internal/pkg/conversation/application/usecase"
	conversation "ruralconnect/internal/pkg/conversation/domain"
)

// SendMessageController handles the send-message endpoint only (one controller per endpoint)
type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(uc *usecase.SendMessageUseCase) *SendMessageController {
	return &SendMessageController{UC: uc}
}

// sendMessageRequest is the DTO for the HTTP request body. Exactly one of
// ProfileID/AccountID must be set.
type sendMessageRequest struct {
	ProfileID string `json:"profileId"`
	AccountID string `json:"accountId"`
	Message   string `json:"message"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var ref conversation.PartnerRef
		switch {
		case req.ProfileID != "" && req.AccountID != "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "provide only one of profileId or accountId"})
			return
		case req.ProfileID != "":
			ref = conversation.PartnerRef{Kind: conversation.PartnerProfile, ID: req.ProfileID}
		case req.AccountID != "":
			ref = conversation.PartnerRef{Kind: conversation.PartnerAccount, ID: req.AccountID}
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "profileId or accountId must be provided"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			SenderID: claims.AccountID,
			Partner:  ref,
			Body:     req.Message,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, conversation.ErrPartnerNotFound):
				status = http.StatusNotFound
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         out.Message.ID,
			"senderId":   out.Message.SenderID,
			"receiverId": out.Message.ReceiverID,
			"message":    out.Message.Body,
			"timestamp":  out.Message.CreatedAt,
			"delivered":  out.Delivered,
		})
	}
}
