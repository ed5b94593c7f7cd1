package usecase

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"go.uber.org/zap"
)

// ChatSummary is one row of the conversation list.
type ChatSummary struct {
	ID          string              `json:"id"`
	Renter      *domain.User        `json:"renter,omitempty"`
	Landlord    *domain.User        `json:"landlord,omitempty"`
	HouseID     string              `json:"houseId"`
	HouseTitle  string              `json:"houseTitle,omitempty"`
	LastMessage *domain.ChatMessage `json:"lastMessage,omitempty"`
	Messages    int                 `json:"messages"`
	UnreadCount int                 `json:"unreadCount"`
}

type ChatUsecase struct {
	catalog Catalog
	lister  *Lister
	logger  *logger.Logger
}

func NewChatUsecase(cat Catalog, lister *Lister, log *logger.Logger) *ChatUsecase {
	return &ChatUsecase{
		catalog: cat,
		lister:  lister,
		logger:  log.Named("ChatUsecase"),
	}
}

// List returns the matching conversations in stored order. The unread total
// covers every conversation, not only the matching ones.
func (uc *ChatUsecase) List(ctx context.Context, c filter.Criteria) (*ListResult[ChatSummary, ChatStats], error) {
	uc.logger.Debug("Listing chats", zap.String("q", c.Text))
	res, err := list(ctx, uc.lister, "chats", chatSchema, uc.catalog.Chats(), c, computeChatStats)
	if err != nil {
		uc.logger.Warn("Failed to list chats", zap.Error(err))
		return nil, err
	}

	rows := make([]ChatSummary, 0, len(res.Items))
	for i := range res.Items {
		rows = append(rows, summarize(&res.Items[i]))
	}
	return &ListResult[ChatSummary, ChatStats]{Items: rows, Count: res.Count, Stats: res.Stats}, nil
}

// Detail returns one conversation with senders and receivers resolved.
func (uc *ChatUsecase) Detail(ctx context.Context, id string) (*domain.Chat, error) {
	_, span := tracer.Start(ctx, "chat.detail")
	defer span.End()

	chat, err := uc.catalog.Chat(id)
	if err != nil {
		uc.logger.Warn("Chat not found", zap.String("chat_id", id))
		return nil, err
	}
	return chat, nil
}

func summarize(c *domain.Chat) ChatSummary {
	s := ChatSummary{
		ID:          c.ID,
		Renter:      c.Renter,
		Landlord:    c.Landlord,
		HouseID:     c.HouseID,
		LastMessage: c.LastMessage(),
		Messages:    len(c.Messages),
		UnreadCount: c.UnreadCount,
	}
	if c.House != nil {
		s.HouseTitle = c.House.Title
	}
	return s
}
