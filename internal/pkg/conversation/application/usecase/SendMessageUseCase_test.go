package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ruralconnect/internal/pkg/conversation/application/task"
	conversation "ruralconnect/internal/pkg/conversation/domain"
)

func TestSendMessagePersistsThenRoutes(t *testing.T) {
	msgs, _, _, resolver := newTestWorld()
	deliverer := &fakeDeliverer{count: 2}
	uc := NewSendMessageUseCase(msgs, resolver, deliverer)

	out, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "acc-employer",
		Partner:  conversation.PartnerRef{Kind: conversation.PartnerAny, ID: "prof-1"},
		Body:     "Need a door fixed",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if out.Message.ID == "" {
		t.Error("message id not set from store")
	}
	if out.Message.ReceiverID != "acc-worker" {
		t.Errorf("receiver = %q, want resolved account acc-worker", out.Message.ReceiverID)
	}
	if out.Delivered != 2 {
		t.Errorf("delivered = %d, want 2", out.Delivered)
	}
	if len(msgs.msgs) != 1 {
		t.Fatalf("stored %d messages, want 1", len(msgs.msgs))
	}
	if len(deliverer.delivered) != 1 {
		t.Fatalf("routed %d envelopes, want 1", len(deliverer.delivered))
	}
	env := deliverer.delivered[0]
	if env.ID != out.Message.ID || env.ReceiverID != "acc-worker" || env.Message != "Need a door fixed" {
		t.Errorf("envelope mismatch: %+v", env)
	}
}

func TestSendMessageEmptyBody(t *testing.T) {
	msgs, _, _, resolver := newTestWorld()
	deliverer := &fakeDeliverer{}
	uc := NewSendMessageUseCase(msgs, resolver, deliverer)

	for _, body := range []string{"", "   ", "\n\t"} {
		_, err := uc.Execute(context.Background(), SendMessageInput{
			SenderID: "acc-employer",
			Partner:  conversation.PartnerRef{ID: "prof-1"},
			Body:     body,
		})
		if !errors.Is(err, conversation.ErrEmptyMessage) {
			t.Errorf("body %q: err = %v, want ErrEmptyMessage", body, err)
		}
	}
	if len(msgs.msgs) != 0 || len(deliverer.delivered) != 0 {
		t.Error("empty sends must not persist or route")
	}
}

func TestSendMessageUnresolvablePartner(t *testing.T) {
	msgs, _, _, resolver := newTestWorld()
	deliverer := &fakeDeliverer{}
	uc := NewSendMessageUseCase(msgs, resolver, deliverer)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "acc-employer",
		Partner:  conversation.PartnerRef{ID: "nope"},
		Body:     "hello",
	})
	if !errors.Is(err, conversation.ErrPartnerNotFound) {
		t.Fatalf("err = %v, want ErrPartnerNotFound", err)
	}
	if len(msgs.msgs) != 0 || len(deliverer.delivered) != 0 {
		t.Error("failed resolution must not persist or route")
	}
}

func TestSendMessageToSelf(t *testing.T) {
	msgs, _, _, resolver := newTestWorld()
	uc := NewSendMessageUseCase(msgs, resolver, &fakeDeliverer{})

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "acc-worker",
		Partner:  conversation.PartnerRef{Kind: conversation.PartnerAccount, ID: "acc-worker"},
		Body:     "note to self",
	})
	if !errors.Is(err, conversation.ErrSelfConversation) {
		t.Fatalf("err = %v, want ErrSelfConversation", err)
	}
	if len(msgs.msgs) != 0 {
		t.Error("self-send must not persist")
	}
}

func TestSendMessageOfflineRecipientQueuesNotification(t *testing.T) {
	msgs, _, _, resolver := newTestWorld()
	queue := &fakeQueue{}
	uc := NewSendMessageUseCase(msgs, resolver, &fakeDeliverer{count: 0})
	uc.Queue = queue

	out, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "acc-employer",
		Partner:  conversation.PartnerRef{ID: "prof-1"},
		Body:     "are you there?",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if out.Delivered != 0 {
		t.Fatalf("delivered = %d, want 0", out.Delivered)
	}
	if len(queue.tasks) != 1 {
		t.Fatalf("queued %d tasks, want 1", len(queue.tasks))
	}
	if queue.tasks[0].Type != task.NotifyOfflineTaskType {
		t.Errorf("task type = %q", queue.tasks[0].Type)
	}
	var p task.NotifyOfflinePayload
	if err := json.Unmarshal(queue.tasks[0].Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.RecipientEmail != "anita@example.com" {
		t.Errorf("recipient = %q, want anita@example.com", p.RecipientEmail)
	}
}

func TestSendMessageOnlineRecipientSkipsQueue(t *testing.T) {
	msgs, _, _, resolver := newTestWorld()
	queue := &fakeQueue{}
	uc := NewSendMessageUseCase(msgs, resolver, &fakeDeliverer{count: 1})
	uc.Queue = queue

	if _, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "acc-employer",
		Partner:  conversation.PartnerRef{ID: "prof-1"},
		Body:     "hi",
	}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(queue.tasks) != 0 {
		t.Errorf("queued %d tasks for an online recipient, want 0", len(queue.tasks))
	}
}

func TestSendMessageInvalidatesSummaryCache(t *testing.T) {
	msgs, _, _, resolver := newTestWorld()
	cache := newFakeCache()
	cache.entries[summaryCacheKey("acc-employer")] = "[]"
	cache.entries[summaryCacheKey("acc-worker")] = "[]"

	uc := NewSendMessageUseCase(msgs, resolver, &fakeDeliverer{count: 1})
	uc.Cache = cache

	if _, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "acc-employer",
		Partner:  conversation.PartnerRef{ID: "prof-1"},
		Body:     "hi",
	}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Errorf("cache still holds %d summaries, want both sides invalidated", len(cache.entries))
	}
}
