package repository

import (
	"errors"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access
type MessageRepository interface {
	Create(msg *domain.Message) error
	FindByID(id uint64) (*domain.Message, error)
	ListByConversation(conversationID uint64, cursor *common.Cursor, limit int) ([]*domain.Message, error)
	MarkReadForReceiver(conversationID uint64, receiverID string) (int64, error)
	LastByConversations(conversationIDs []uint64) (map[uint64]*domain.Message, error)
	UnreadByConversations(conversationIDs []uint64, receiverID string) (map[uint64]int64, error)
	CountUnreadForReceiver(receiverID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) FindByID(id uint64) (*domain.Message, error) {
	var msg domain.Message
	if err := r.db.Where("id = ?", id).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// ListByConversation returns the log oldest-first. A nil cursor starts from
// the beginning; otherwise rows strictly after (created_at, id) are returned.
func (r *messageRepository) ListByConversation(conversationID uint64, cursor *common.Cursor, limit int) ([]*domain.Message, error) {
	query := r.db.Where("conversation_id = ?", conversationID)
	if cursor != nil {
		query = query.Where("created_at > ? OR (created_at = ? AND id > ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var messages []*domain.Message
	err := query.Order("created_at ASC, id ASC").Limit(limit).Find(&messages).Error
	return messages, err
}

// MarkReadForReceiver flips read on the receiver's unread messages in one
// statement. Idempotent; returns the number of rows flipped.
func (r *messageRepository) MarkReadForReceiver(conversationID uint64, receiverID string) (int64, error) {
	result := r.db.Model(&domain.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = false", conversationID, receiverID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// LastByConversations returns each conversation's most recent message.
// The log is append-only, so MAX(id) per conversation is the latest row.
func (r *messageRepository) LastByConversations(conversationIDs []uint64) (map[uint64]*domain.Message, error) {
	result := make(map[uint64]*domain.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	var messages []*domain.Message
	err := r.db.Where("id IN (?)",
		r.db.Model(&domain.Message{}).
			Select("MAX(id)").
			Where("conversation_id IN ?", conversationIDs).
			Group("conversation_id"),
	).Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for _, m := range messages {
		result[m.ConversationID] = m
	}
	return result, nil
}

func (r *messageRepository) UnreadByConversations(conversationIDs []uint64, receiverID string) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ConversationID uint64
		Count          int64
	}
	err := r.db.Model(&domain.Message{}).
		Select("conversation_id, COUNT(*) as count").
		Where("conversation_id IN ? AND receiver_id = ? AND is_read = false", conversationIDs, receiverID).
		Group("conversation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ConversationID] = row.Count
	}
	return result, nil
}

func (r *messageRepository) CountUnreadForReceiver(receiverID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("receiver_id = ? AND is_read = false", receiverID).
		Count(&count).Error
	return count, err
}
