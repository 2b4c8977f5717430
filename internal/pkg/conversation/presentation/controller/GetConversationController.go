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

// GetConversationController serves history lookups. Two routes share it: the
// worker-profile variant and the direct-account variant, differing only in
// how the path parameter is tagged.
type GetConversationController struct {
	UC   *usecase.GetConversationUseCase
	Kind conversation.PartnerKind
	// Param is the gin path parameter carrying the partner identifier.
	Param string
}

func NewGetWorkerConversationController(uc *usecase.GetConversationUseCase) *GetConversationController {
	return &GetConversationController{UC: uc, Kind: conversation.PartnerProfile, Param: "workerId"}
}

func NewGetAccountConversationController(uc *usecase.GetConversationUseCase) *GetConversationController {
	return &GetConversationController{UC: uc, Kind: conversation.PartnerAccount, Param: "accountId"}
}

func (h *GetConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.GetConversationInput{
			SelfID:  claims.AccountID,
			Partner: conversation.PartnerRef{Kind: h.Kind, ID: c.Param(h.Param)},
		})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, conversation.ErrPartnerNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		partner := gin.H{
			"accountId": out.Partner.Account.ID,
			"name":      out.Partner.Account.Name,
			"email":     out.Partner.Account.Email,
		}
		if out.Partner.ProfileID != "" {
			partner["type"] = "worker"
			partner["id"] = out.Partner.ProfileID
		} else {
			partner["type"] = "account"
			partner["id"] = out.Partner.Account.ID
		}

		msgs := make([]gin.H, 0, len(out.Messages))
		for _, m := range out.Messages {
			msgs = append(msgs, gin.H{
				"id":         m.ID,
				"senderId":   m.SenderID,
				"receiverId": m.ReceiverID,
				"message":    m.Body,
				"timestamp":  m.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"partner": partner, "messages": msgs})
	}
}
