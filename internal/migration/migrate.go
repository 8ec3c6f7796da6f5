package migration

import (
	"github.com/blabla/messaging-backend/internal/domain"
	"gorm.io/gorm"
)

// Run applies the messaging schema. AutoMigrate creates the unique pair index
// on conversations and the unique (message_id, user_id) index on reactions,
// which the repositories rely on for first-contact races and reaction upserts.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.MessageReaction{},
	)
}
