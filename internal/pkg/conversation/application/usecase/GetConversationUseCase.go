package usecase

import (
	"context"
	"fmt"

	conversation "ruralconnect/internal/pkg/conversation/domain"
	repository "ruralconnect/internal/pkg/conversation/persistence/repository/port"
)

type GetConversationInput struct {
	SelfID  string
	Partner conversation.PartnerRef
}

// GetConversationOutput pairs the resolved partner metadata with the full
// ordered history. History direction does not matter: history(A,B) and
// history(B,A) are the same set.
type GetConversationOutput struct {
	Partner  ResolvedPartner
	Messages []conversation.Message
}

// GetConversationUseCase fetches the message history with one partner.
type GetConversationUseCase struct {
	Messages repository.MessageRepository
	Resolver *ResolvePartnerUseCase
}

func NewGetConversationUseCase(messages repository.MessageRepository, resolver *ResolvePartnerUseCase) *GetConversationUseCase {
	return &GetConversationUseCase{Messages: messages, Resolver: resolver}
}

func (uc *GetConversationUseCase) Execute(ctx context.Context, in GetConversationInput) (*GetConversationOutput, error) {
	partner, err := uc.Resolver.Execute(ctx, in.Partner)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.Messages.History(ctx, in.SelfID, partner.Account.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &GetConversationOutput{Partner: *partner, Messages: msgs}, nil
}
