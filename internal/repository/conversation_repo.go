package repository

import (
	"errors"
	"time"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"gorm.io/gorm"
)

// ConversationRepository conversation data access
type ConversationRepository interface {
	FindOrCreate(userA, userB string) (*domain.Conversation, error)
	FindByID(id uint64) (*domain.Conversation, error)
	FindByPair(userA, userB string) (*domain.Conversation, error)
	Touch(id uint64, at time.Time) error
	ListForUser(userID string) ([]*domain.Conversation, error)
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// FindOrCreate returns the conversation for the canonical pair, creating it
// lazily. Two first-contact sends can race here; the unique index on
// (user_a, user_b) rejects the loser, which then re-fetches the winner's row.
func (r *conversationRepository) FindOrCreate(userA, userB string) (*domain.Conversation, error) {
	first, second := domain.CanonicalPair(userA, userB)

	conv, err := r.FindByPair(first, second)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, common.ErrConversationNotFound) {
		return nil, err
	}

	created := &domain.Conversation{UserA: first, UserB: second, UpdatedAt: time.Now()}
	if createErr := r.db.Create(created).Error; createErr != nil {
		// Lost the creation race: the row must exist now
		if conv, err = r.FindByPair(first, second); err == nil {
			return conv, nil
		}
		return nil, createErr
	}
	return created, nil
}

func (r *conversationRepository) FindByID(id uint64) (*domain.Conversation, error) {
	var conv domain.Conversation
	if err := r.db.Where("id = ?", id).First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) FindByPair(userA, userB string) (*domain.Conversation, error) {
	first, second := domain.CanonicalPair(userA, userB)

	var conv domain.Conversation
	if err := r.db.Where("user_a = ? AND user_b = ?", first, second).First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) Touch(id uint64, at time.Time) error {
	return r.db.Model(&domain.Conversation{}).Where("id = ?", id).
		Update("updated_at", at).Error
}

func (r *conversationRepository) ListForUser(userID string) ([]*domain.Conversation, error) {
	var conversations []*domain.Conversation
	err := r.db.Where("user_a = ? OR user_b = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}
