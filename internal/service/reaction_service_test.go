package service

import (
	"strings"
	"testing"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetReaction_Success(t *testing.T) {
	rcnRepo := new(mockReactionRepo)
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewReactionService(rcnRepo, msgRepo, userRepo)

	msgRepo.On("FindByID", uint64(1)).Return(&domain.Message{ID: 1, SenderID: "bob", ReceiverID: "alice"}, nil)
	rcnRepo.On("Upsert", uint64(1), "alice", "👍").Return(&domain.MessageReaction{ID: 10, MessageID: 1, UserID: "alice", Emoji: "👍"}, nil)
	userRepo.On("FindByID", "alice").Return(&domain.User{ID: "alice", Nickname: "Alice"}, nil)

	resp, err := svc.SetReaction("alice", 1, "👍")

	assert.NoError(t, err)
	assert.Equal(t, "👍", resp.Emoji)
	assert.Equal(t, "Alice", resp.User.Nickname)
	rcnRepo.AssertExpectations(t)
}

func TestSetReaction_OverwritesPrevious(t *testing.T) {
	// A second reaction from the same user goes through the same upsert; the
	// repository replaces the emoji rather than adding a row.
	rcnRepo := new(mockReactionRepo)
	msgRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewReactionService(rcnRepo, msgRepo, userRepo)

	msgRepo.On("FindByID", uint64(1)).Return(&domain.Message{ID: 1, SenderID: "bob", ReceiverID: "alice"}, nil)
	rcnRepo.On("Upsert", uint64(1), "alice", "❤️").Return(&domain.MessageReaction{ID: 10, MessageID: 1, UserID: "alice", Emoji: "❤️"}, nil)
	userRepo.On("FindByID", "alice").Return(&domain.User{ID: "alice"}, nil)

	resp, err := svc.SetReaction("alice", 1, "❤️")

	assert.NoError(t, err)
	assert.Equal(t, "❤️", resp.Emoji)
	assert.Equal(t, uint64(10), resp.ID)
}

func TestSetReaction_EmptyEmoji(t *testing.T) {
	svc := NewReactionService(new(mockReactionRepo), new(mockMessageRepo), new(mockUserRepo))

	resp, err := svc.SetReaction("alice", 1, "")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestSetReaction_OversizedEmoji(t *testing.T) {
	svc := NewReactionService(new(mockReactionRepo), new(mockMessageRepo), new(mockUserRepo))

	resp, err := svc.SetReaction("alice", 1, strings.Repeat("x", 65))

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestSetReaction_UnknownMessage(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	svc := NewReactionService(new(mockReactionRepo), msgRepo, new(mockUserRepo))

	msgRepo.On("FindByID", uint64(404)).Return(nil, common.ErrMessageNotFound)

	resp, err := svc.SetReaction("alice", 404, "👍")

	assert.ErrorIs(t, err, common.ErrMessageNotFound)
	assert.Nil(t, resp)
}

func TestSetReaction_NonParticipantForbidden(t *testing.T) {
	rcnRepo := new(mockReactionRepo)
	msgRepo := new(mockMessageRepo)
	svc := NewReactionService(rcnRepo, msgRepo, new(mockUserRepo))

	msgRepo.On("FindByID", uint64(1)).Return(&domain.Message{ID: 1, SenderID: "bob", ReceiverID: "alice"}, nil)

	resp, err := svc.SetReaction("mallory", 1, "👍")

	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Nil(t, resp)
	rcnRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestClearReaction_Success(t *testing.T) {
	rcnRepo := new(mockReactionRepo)
	msgRepo := new(mockMessageRepo)
	svc := NewReactionService(rcnRepo, msgRepo, new(mockUserRepo))

	msgRepo.On("FindByID", uint64(1)).Return(&domain.Message{ID: 1, SenderID: "bob", ReceiverID: "alice"}, nil)
	rcnRepo.On("Delete", uint64(1), "alice").Return(nil)

	err := svc.ClearReaction("alice", 1)

	assert.NoError(t, err)
	rcnRepo.AssertExpectations(t)
}

func TestClearReaction_AbsentIsNoOp(t *testing.T) {
	rcnRepo := new(mockReactionRepo)
	msgRepo := new(mockMessageRepo)
	svc := NewReactionService(rcnRepo, msgRepo, new(mockUserRepo))

	msgRepo.On("FindByID", uint64(1)).Return(&domain.Message{ID: 1, SenderID: "bob", ReceiverID: "alice"}, nil)
	// Repository delete of a missing row returns no error
	rcnRepo.On("Delete", uint64(1), "alice").Return(nil)

	assert.NoError(t, svc.ClearReaction("alice", 1))
}

func TestClearReaction_NonParticipantForbidden(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	svc := NewReactionService(new(mockReactionRepo), msgRepo, new(mockUserRepo))

	msgRepo.On("FindByID", uint64(1)).Return(&domain.Message{ID: 1, SenderID: "bob", ReceiverID: "alice"}, nil)

	assert.ErrorIs(t, svc.ClearReaction("mallory", 1), common.ErrForbidden)
}
