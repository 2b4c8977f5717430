package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ruralconnect/internal/infrastructure/mail"
	qport "ruralconnect/internal/infrastructure/queue/port"
)

// NotifyOfflineTaskType is the queue task name for emailing a recipient whose
// room was empty at delivery time.
const NotifyOfflineTaskType = "chat:notify_offline"

// NotifyOfflinePayload is the JSON payload transported via the queue.
type NotifyOfflinePayload struct {
	RecipientName  string `json:"recipientName"`
	RecipientEmail string `json:"recipientEmail"`
	Preview        string `json:"preview"`
}

// EnqueueNotifyOffline queues one notification. The unique TTL collapses
// bursts of messages to the same offline recipient into a single email.
func EnqueueNotifyOffline(ctx context.Context, client qport.Client, p NotifyOfflinePayload) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = client.Enqueue(ctx, qport.Task{Type: NotifyOfflineTaskType, Payload: b}, qport.EnqueueOption{
		Queue:     "notify",
		MaxRetry:  5,
		UniqueTTL: 5 * time.Minute,
	})
	return err
}

// RegisterNotifyOfflineTask binds the task handler to the provided server.
func RegisterNotifyOfflineTask(srv qport.Server, mailer *mail.Mailer) {
	srv.Register(NotifyOfflineTaskType, func(ctx context.Context, t qport.Task) error {
		var p NotifyOfflinePayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying will not help
			return nil
		}
		if p.RecipientEmail == "" {
			return nil
		}

		body := fmt.Sprintf("Hello %s,\n\nYou have a new message waiting on Rural Connect:\n\n%q\n\nLog in to reply.\n", p.RecipientName, previewText(p.Preview))
		return mailer.Send(p.RecipientEmail, "You have a new message on Rural Connect", body)
	})
}

const previewLimit = 80

// previewText caps the preview at previewLimit characters, cutting on a rune
// boundary so multibyte text is never split mid-sequence.
func previewText(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "..."
}
