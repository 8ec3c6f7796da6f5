package service

import (
	"context"
	"encoding/json"

	"github.com/blabla/messaging-backend/internal/domain"
	"github.com/blabla/messaging-backend/internal/repository"
	"github.com/blabla/messaging-backend/pkg/cache"
	pkglogger "github.com/blabla/messaging-backend/pkg/logger"
)

// ConversationService business logic for conversation list views
type ConversationService interface {
	ListForUser(ctx context.Context, userID string) ([]*domain.ConversationResponse, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type conversationService struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	cache    cache.Service
}

// NewConversationService creates a new ConversationService
func NewConversationService(
	convRepo repository.ConversationRepository,
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	cacheService cache.Service,
) ConversationService {
	return &conversationService{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		userRepo: userRepo,
		cache:    cacheService,
	}
}

// ListForUser returns the caller's conversations newest-activity-first, each
// with the other participant's summary, the last message, and the caller's
// unread count.
func (s *conversationService) ListForUser(ctx context.Context, userID string) ([]*domain.ConversationResponse, error) {
	if s.cache != nil {
		if data, err := s.cache.GetConversations(ctx, userID); err == nil {
			var cached []*domain.ConversationResponse
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	conversations, err := s.convRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(conversations) == 0 {
		return []*domain.ConversationResponse{}, nil
	}

	convIDs := make([]uint64, 0, len(conversations))
	otherIDs := make([]string, 0, len(conversations))
	for _, conv := range conversations {
		convIDs = append(convIDs, conv.ID)
		otherIDs = append(otherIDs, conv.OtherParticipant(userID))
	}

	lastMessages, err := s.msgRepo.LastByConversations(convIDs)
	if err != nil {
		return nil, err
	}
	unreadCounts, err := s.msgRepo.UnreadByConversations(convIDs, userID)
	if err != nil {
		return nil, err
	}

	// Sender summaries are needed for last-message payloads too
	summaryIDs := append(otherIDs, userID)
	summaries, err := s.userRepo.SummariesByIDs(summaryIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		otherID := conv.OtherParticipant(userID)
		other, ok := summaries[otherID]
		if !ok {
			other = domain.UserSummary{ID: otherID}
		}

		resp := &domain.ConversationResponse{
			ID:          conv.ID,
			OtherUser:   other,
			UnreadCount: unreadCounts[conv.ID],
			UpdatedAt:   conv.UpdatedAt,
		}
		if last, ok := lastMessages[conv.ID]; ok {
			sender, ok := summaries[last.SenderID]
			if !ok {
				sender = domain.UserSummary{ID: last.SenderID}
			}
			resp.LastMessage = last.ToResponse(sender)
		}
		responses = append(responses, resp)
	}

	if s.cache != nil {
		if err := s.cache.SetConversations(ctx, userID, responses); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("conversation list cache write failed")
		}
	}

	return responses, nil
}

// UnreadCount returns the caller's total unread message count (badge value)
func (s *conversationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if s.cache != nil {
		if count, err := s.cache.GetUnreadCount(ctx, userID); err == nil {
			return count, nil
		}
	}

	count, err := s.msgRepo.CountUnreadForReceiver(userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		_ = s.cache.SetUnreadCount(ctx, userID, count) //nolint:errcheck
	}
	return count, nil
}
