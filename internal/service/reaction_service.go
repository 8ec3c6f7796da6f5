package service

import (
	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"github.com/blabla/messaging-backend/internal/repository"
)

const maxEmojiLength = 64

// ReactionService business logic for per-message emoji reactions
type ReactionService interface {
	SetReaction(callerID string, messageID uint64, emoji string) (*domain.ReactionResponse, error)
	ClearReaction(callerID string, messageID uint64) error
}

type reactionService struct {
	rcnRepo  repository.ReactionRepository
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
}

// NewReactionService creates a new ReactionService
func NewReactionService(
	rcnRepo repository.ReactionRepository,
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) ReactionService {
	return &reactionService{
		rcnRepo:  rcnRepo,
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

// SetReaction upserts the caller's reaction on a message. Any emoji string is
// stored verbatim; only its length is bounded by the column size.
func (s *reactionService) SetReaction(callerID string, messageID uint64, emoji string) (*domain.ReactionResponse, error) {
	if emoji == "" || len(emoji) > maxEmojiLength {
		return nil, common.ErrInvalidInput
	}

	msg, err := s.msgRepo.FindByID(messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != callerID && msg.ReceiverID != callerID {
		return nil, common.ErrForbidden
	}

	reaction, err := s.rcnRepo.Upsert(messageID, callerID, emoji)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(callerID)
	if err != nil {
		return nil, err
	}
	return reaction.ToResponse(user.ToSummary()), nil
}

// ClearReaction removes the caller's reaction; clearing one that does not
// exist is a no-op.
func (s *reactionService) ClearReaction(callerID string, messageID uint64) error {
	msg, err := s.msgRepo.FindByID(messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != callerID && msg.ReceiverID != callerID {
		return common.ErrForbidden
	}

	return s.rcnRepo.Delete(messageID, callerID)
}
