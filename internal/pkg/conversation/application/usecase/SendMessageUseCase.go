package usecase

import (
	"context"
	"fmt"
	"strings"

	cacheport "ruralconnect/internal/infrastructure/cache/port"
	"ruralconnect/internal/infrastructure/metrics"
	"ruralconnect/internal/infrastructure/realtime"
	queueport "ruralconnect/internal/infrastructure/queue/port"
	conversation "ruralconnect/internal/pkg/conversation/domain"
	"ruralconnect/internal/pkg/conversation/application/task"
	repository "ruralconnect/internal/pkg/conversation/persistence/repository/port"
)

// Deliverer pushes an envelope to the receiver's room and reports how many
// live connections took it. realtime.Router satisfies it; tests use fakes.
type Deliverer interface {
	Deliver(env realtime.Envelope) int
}

// SendMessageInput carries a validated-at-the-boundary send request. Partner
// is the tagged reference exactly as the client supplied it.
type SendMessageInput struct {
	SenderID string
	Partner  conversation.PartnerRef
	Body     string
}

// SendMessageOutput is the persisted message plus live-delivery bookkeeping.
type SendMessageOutput struct {
	Message   conversation.Message
	Delivered int
}

// SendMessageUseCase is the single send path for both transports: it
// validates, resolves the partner, persists, then routes. Persistence and
// live delivery are independent; a crash between them is an accepted
// best-effort gap, never a partial write.
type SendMessageUseCase struct {
	Messages repository.MessageRepository
	Resolver *ResolvePartnerUseCase
	Router   Deliverer
	Queue    queueport.Client // optional; offline notifications skipped when nil
	Cache    cacheport.Cache  // optional; summary cache invalidation skipped when nil
}

func NewSendMessageUseCase(messages repository.MessageRepository, resolver *ResolvePartnerUseCase, router Deliverer) *SendMessageUseCase {
	return &SendMessageUseCase{Messages: messages, Resolver: resolver, Router: router}
}

// Execute sends a message. Validation and resolution failures surface as
// typed domain errors with nothing persisted or delivered.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	// Validate before resolving so empty sends never cost a lookup.
	if strings.TrimSpace(in.Body) == "" {
		return nil, conversation.ErrEmptyMessage
	}

	partner, err := uc.Resolver.Execute(ctx, in.Partner)
	if err != nil {
		return nil, err
	}

	msg, err := conversation.NewMessage(conversation.Message{
		SenderID:   in.SenderID,
		ReceiverID: partner.Account.ID,
		Body:       in.Body,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Messages.Save(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id
	metrics.MessagesSent.Inc()

	delivered := uc.Router.Deliver(realtime.Envelope{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Message:    msg.Body,
		Timestamp:  msg.CreatedAt,
	})
	metrics.MessagesDelivered.Add(float64(delivered))

	if delivered == 0 && uc.Queue != nil {
		// Recipient offline: queue an email nudge. Best-effort only, a full
		// outbox would need the send and enqueue in one transaction.
		_ = task.EnqueueNotifyOffline(ctx, uc.Queue, task.NotifyOfflinePayload{
			RecipientName:  partner.Account.Name,
			RecipientEmail: partner.Account.Email,
			Preview:        msg.Body,
		})
	}

	if uc.Cache != nil {
		_, _ = uc.Cache.Del(ctx, summaryCacheKey(msg.SenderID), summaryCacheKey(msg.ReceiverID))
	}

	return &SendMessageOutput{Message: *msg, Delivered: delivered}, nil
}
