package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	cacheport "ruralconnect/internal/infrastructure/cache/port"
	conversation "ruralconnect/internal/pkg/conversation/domain"
	identity "ruralconnect/internal/pkg/identity/domain"
	identityrepo "ruralconnect/internal/pkg/identity/persistence/repository/port"
	repository "ruralconnect/internal/pkg/conversation/persistence/repository/port"
)

const summaryCacheTTL = 30 * time.Second

func summaryCacheKey(accountID string) string {
	return "conversations:" + accountID
}

// ListConversationsUseCase derives the conversation list for an account: one
// entry per distinct counterpart, annotated with the most recent message in
// either direction, most recent conversation first.
//
// The reduction runs over a full scan of the account's messages. Fine at this
// scale; the Redis cache in front takes the sting out of repeated loads until
// an incrementally maintained summary table is warranted.
type ListConversationsUseCase struct {
	Messages repository.MessageRepository
	Accounts identityrepo.AccountRepository
	Cache    cacheport.Cache // optional
}

func NewListConversationsUseCase(messages repository.MessageRepository, accounts identityrepo.AccountRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Messages: messages, Accounts: accounts}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, accountID string) ([]conversation.Summary, error) {
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, summaryCacheKey(accountID)); err == nil {
			var cached []conversation.Summary
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	msgs, err := uc.Messages.ListByParticipant(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// msgs come back in ascending timestamp order with a stable tie-break, so
	// the last message seen per counterpart is that group's latest.
	latest := make(map[string]conversation.Message)
	order := make([]string, 0)
	for _, m := range msgs {
		counterpart := m.SenderID
		if counterpart == accountID {
			counterpart = m.ReceiverID
		}
		if _, seen := latest[counterpart]; !seen {
			order = append(order, counterpart)
		}
		latest[counterpart] = m
	}

	summaries := make([]conversation.Summary, 0, len(latest))
	for _, counterpart := range order {
		m := latest[counterpart]
		account, err := uc.Accounts.GetByID(ctx, counterpart)
		if errors.Is(err, identity.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		summaries = append(summaries, conversation.Summary{
			AccountID:     counterpart,
			Name:          account.Name,
			Email:         account.Email,
			LastMessage:   m.Body,
			LastTimestamp: m.CreatedAt,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastTimestamp.After(summaries[j].LastTimestamp)
	})

	if uc.Cache != nil {
		if raw, err := json.Marshal(summaries); err == nil {
			_ = uc.Cache.Set(ctx, summaryCacheKey(accountID), string(raw), summaryCacheTTL)
		}
	}

	return summaries, nil
}
