package service

import (
	"time"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ConversationRepository ---

type mockConversationRepo struct {
	mock.Mock
}

func (m *mockConversationRepo) FindOrCreate(userA, userB string) (*domain.Conversation, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByID(id uint64) (*domain.Conversation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByPair(userA, userB string) (*domain.Conversation, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) Touch(id uint64, at time.Time) error {
	return m.Called(id, at).Error(0)
}

func (m *mockConversationRepo) ListForUser(userID string) ([]*domain.Conversation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Conversation), args.Error(1)
}

// --- Mock MessageRepository ---

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(msg *domain.Message) error {
	return m.Called(msg).Error(0)
}

func (m *mockMessageRepo) FindByID(id uint64) (*domain.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) ListByConversation(conversationID uint64, cursor *common.Cursor, limit int) ([]*domain.Message, error) {
	args := m.Called(conversationID, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) MarkReadForReceiver(conversationID uint64, receiverID string) (int64, error) {
	args := m.Called(conversationID, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageRepo) LastByConversations(conversationIDs []uint64) (map[uint64]*domain.Message, error) {
	args := m.Called(conversationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) UnreadByConversations(conversationIDs []uint64, receiverID string) (map[uint64]int64, error) {
	args := m.Called(conversationIDs, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]int64), args.Error(1)
}

func (m *mockMessageRepo) CountUnreadForReceiver(receiverID string) (int64, error) {
	args := m.Called(receiverID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReactionRepository ---

type mockReactionRepo struct {
	mock.Mock
}

func (m *mockReactionRepo) Upsert(messageID uint64, userID, emoji string) (*domain.MessageReaction, error) {
	args := m.Called(messageID, userID, emoji)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageReaction), args.Error(1)
}

func (m *mockReactionRepo) Delete(messageID uint64, userID string) error {
	return m.Called(messageID, userID).Error(0)
}

func (m *mockReactionRepo) ListByMessages(messageIDs []uint64) (map[uint64][]domain.MessageReaction, error) {
	args := m.Called(messageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64][]domain.MessageReaction), args.Error(1)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) SummariesByIDs(ids []string) (map[string]domain.UserSummary, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.UserSummary), args.Error(1)
}
