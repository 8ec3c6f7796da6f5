package repository

import (
	"github.com/blabla/messaging-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository message reaction data access
type ReactionRepository interface {
	Upsert(messageID uint64, userID, emoji string) (*domain.MessageReaction, error)
	Delete(messageID uint64, userID string) error
	ListByMessages(messageIDs []uint64) (map[uint64][]domain.MessageReaction, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Upsert creates the user's reaction or overwrites its emoji. The unique
// index on (message_id, user_id) makes the ON CONFLICT path deterministic.
func (r *reactionRepository) Upsert(messageID uint64, userID, emoji string) (*domain.MessageReaction, error) {
	reaction := &domain.MessageReaction{
		MessageID: messageID,
		UserID:    userID,
		Emoji:     emoji,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"emoji", "created_at"}),
	}).Create(reaction).Error
	if err != nil {
		return nil, err
	}

	// Re-fetch: on the conflict path the returned struct has no row ID
	var stored domain.MessageReaction
	if err := r.db.Where("message_id = ? AND user_id = ?", messageID, userID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete removes the user's reaction; deleting a nonexistent one is a no-op
func (r *reactionRepository) Delete(messageID uint64, userID string) error {
	return r.db.Where("message_id = ? AND user_id = ?", messageID, userID).
		Delete(&domain.MessageReaction{}).Error
}

func (r *reactionRepository) ListByMessages(messageIDs []uint64) (map[uint64][]domain.MessageReaction, error) {
	result := make(map[uint64][]domain.MessageReaction, len(messageIDs))
	if len(messageIDs) == 0 {
		return result, nil
	}

	var reactions []domain.MessageReaction
	err := r.db.Where("message_id IN ?", messageIDs).
		Order("created_at ASC, id ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}

	for _, reaction := range reactions {
		result[reaction.MessageID] = append(result[reaction.MessageID], reaction)
	}
	return result, nil
}
