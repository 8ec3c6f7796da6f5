package service

import (
	"context"
	"time"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"github.com/blabla/messaging-backend/internal/repository"
	"github.com/blabla/messaging-backend/pkg/cache"
	pkglogger "github.com/blabla/messaging-backend/pkg/logger"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

// MessageService business logic for sending and reading direct messages
type MessageService interface {
	Send(ctx context.Context, senderID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error)
	GetConversationWith(ctx context.Context, callerID, otherUserID, cursor string, limit int) ([]*domain.MessageResponse, *common.Meta, error)
}

type messageService struct {
	msgRepo  repository.MessageRepository
	convRepo repository.ConversationRepository
	userRepo repository.UserRepository
	rcnRepo  repository.ReactionRepository
	cache    cache.Service
}

// NewMessageService creates a new MessageService
func NewMessageService(
	msgRepo repository.MessageRepository,
	convRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	rcnRepo repository.ReactionRepository,
	cacheService cache.Service,
) MessageService {
	return &messageService{
		msgRepo:  msgRepo,
		convRepo: convRepo,
		userRepo: userRepo,
		rcnRepo:  rcnRepo,
		cache:    cacheService,
	}
}

// Send validates, lazily creates the conversation for the canonical pair,
// appends the message unread, and bumps the conversation's activity time.
// Nothing is persisted when validation fails.
func (s *messageService) Send(ctx context.Context, senderID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	if senderID == req.ReceiverID {
		return nil, common.ErrSelfMessage
	}
	if req.Content == "" && req.MediaURL == "" {
		return nil, common.ErrEmptyMessage
	}
	if req.MediaURL != "" && req.MediaType != domain.MediaTypeImage && req.MediaType != domain.MediaTypeVideo {
		return nil, common.ErrBadMediaType
	}

	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(req.ReceiverID); err != nil {
		return nil, err
	}

	conv, err := s.convRepo.FindOrCreate(senderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		ReceiverID:     req.ReceiverID,
		Content:        req.Content,
		MediaURL:       req.MediaURL,
		MediaType:      req.MediaType,
	}
	if err := s.msgRepo.Create(msg); err != nil {
		return nil, err
	}

	if err := s.convRepo.Touch(conv.ID, msg.CreatedAt); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Uint64("conversation_id", conv.ID).
			Msg("conversation touch failed")
	}

	s.invalidateViews(ctx, senderID, req.ReceiverID)

	return msg.ToResponse(sender.ToSummary()), nil
}

// GetConversationWith returns the message log with the given user oldest
// first, marking the caller's unread messages read as a side effect of the
// view. Cursor pagination is keyed on (created_at, id).
func (s *messageService) GetConversationWith(ctx context.Context, callerID, otherUserID, cursor string, limit int) ([]*domain.MessageResponse, *common.Meta, error) {
	if otherUserID == "" || otherUserID == callerID {
		return nil, nil, common.ErrInvalidInput
	}
	if limit < 1 || limit > maxMessageLimit {
		limit = defaultMessageLimit
	}

	after, err := common.DecodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	conv, err := s.convRepo.FindByPair(callerID, otherUserID)
	if err != nil {
		return nil, nil, err
	}

	flipped, err := s.msgRepo.MarkReadForReceiver(conv.ID, callerID)
	if err != nil {
		return nil, nil, err
	}
	if flipped > 0 {
		s.invalidateViews(ctx, callerID)
	}

	messages, err := s.msgRepo.ListByConversation(conv.ID, after, limit)
	if err != nil {
		return nil, nil, err
	}

	responses, err := s.buildResponses(conv, messages)
	if err != nil {
		return nil, nil, err
	}

	meta := &common.Meta{Limit: limit}
	if len(messages) == limit {
		last := messages[len(messages)-1]
		meta.NextCursor = common.EncodeCursor(last.CreatedAt, last.ID)
	}

	return responses, meta, nil
}

// buildResponses joins messages with sender summaries and grouped reactions
func (s *messageService) buildResponses(conv *domain.Conversation, messages []*domain.Message) ([]*domain.MessageResponse, error) {
	if len(messages) == 0 {
		return []*domain.MessageResponse{}, nil
	}

	msgIDs := make([]uint64, 0, len(messages))
	for _, m := range messages {
		msgIDs = append(msgIDs, m.ID)
	}
	reactions, err := s.rcnRepo.ListByMessages(msgIDs)
	if err != nil {
		return nil, err
	}

	// Reacting users can include either participant; summaries cover both
	summaries, err := s.userRepo.SummariesByIDs([]string{conv.UserA, conv.UserB})
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, 0, len(messages))
	for _, m := range messages {
		sender, ok := summaries[m.SenderID]
		if !ok {
			sender = domain.UserSummary{ID: m.SenderID}
		}
		resp := m.ToResponse(sender)
		resp.Reactions = domain.GroupReactionsByEmoji(reactions[m.ID], summaries)
		responses = append(responses, resp)
	}
	return responses, nil
}

// invalidateViews drops the cached conversation lists and unread badges that
// a send or read just made stale.
func (s *messageService) invalidateViews(ctx context.Context, userIDs ...string) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.cache.InvalidateConversations(ctx, userIDs...); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("conversation cache invalidation failed")
	}
	for _, id := range userIDs {
		_ = s.cache.InvalidateUnreadCount(ctx, id) //nolint:errcheck
	}
}
