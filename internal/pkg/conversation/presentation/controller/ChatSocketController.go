package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"ruralconnect/internal/infrastructure/auth"
	"ruralconnect/internal/infrastructure/metrics"
	"ruralconnect/internal/infrastructure/realtime"
	"ruralconnect/internal/pkg/conversation/application/usecase"
	conversation "ruralconnect/internal/pkg/conversation/domain"
)

const defaultReadTimeout = 60 * time.Second

// ChatSocketController handles the websocket endpoint for realtime chat
// traffic. The handshake carries the same bearer token REST uses, passed via
// query parameter since a persistent connection has no per-message header
// channel.
type ChatSocketController struct {
	tokens          *auth.TokenManager
	registry        *realtime.Registry
	sendUC          *usecase.SendMessageUseCase
	inflightTimeout time.Duration
}

func NewChatSocketController(tokens *auth.TokenManager, registry *realtime.Registry, sendUC *usecase.SendMessageUseCase) *ChatSocketController {
	return &ChatSocketController{
		tokens:          tokens,
		registry:        registry,
		sendUC:          sendUC,
		inflightTimeout: 5 * time.Second,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when deploying
		// behind a fixed client origin.
		return true
	},
}

type inboundFrame struct {
	Type       string `json:"type"`
	ReceiverID string `json:"receiverId,omitempty"`
	Message    string `json:"message,omitempty"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

type ackFrame struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// Handle authenticates the handshake, upgrades, and processes frames until
// the client disconnects. An invalid token is refused before any event
// handler can run; no partially authenticated connection ever joins a room.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ctl.tokens.Parse(c.Query("token"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just return.
			return
		}

		conn := realtime.NewConnection(claims.AccountID, ws)
		ctl.registry.Attach(conn)
		conn.Start()
		metrics.LiveConnections.Inc()
		defer func() {
			ctl.registry.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
			metrics.LiveConnections.Dec()
		}()

		ws.SetReadLimit(1 << 20)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(ackFrame{Type: "connected"}); err == nil {
			_ = conn.Send(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			switch frame.Type {
			case "message:send":
				ctl.handleSend(c, conn, claims.AccountID, frame)
			default:
				ctl.replyError(conn, "unsupported_type", "unknown frame type")
			}
		}
	}
}

func (ctl *ChatSocketController) handleSend(c *gin.Context, conn *realtime.Connection, senderID string, frame inboundFrame) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	out, err := ctl.sendUC.Execute(ctx, usecase.SendMessageInput{
		SenderID: senderID,
		Partner:  conversation.PartnerRef{Kind: conversation.PartnerAny, ID: frame.ReceiverID},
		Body:     frame.Message,
	})
	if err != nil {
		// There is no response channel beyond the sender's own socket: report
		// there and emit nothing to anyone else.
		switch {
		case errors.Is(err, conversation.ErrPartnerNotFound):
			ctl.replyError(conn, "partner_not_found", "recipient could not be resolved")
		case errors.Is(err, usecase.ErrPersistence):
			ctl.replyError(conn, "internal_error", "failed to store message")
		default:
			ctl.replyError(conn, "bad_request", err.Error())
		}
		return
	}

	if payload, err := json.Marshal(ackFrame{Type: "message:sent", ID: out.Message.ID}); err == nil {
		_ = conn.Send(payload)
	}
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, code string, message string) {
	frame := errorFrame{Type: "error", Code: code, Error: message}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}
