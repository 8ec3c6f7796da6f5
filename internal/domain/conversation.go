package domain

import "time"

// Conversation is the unique pairing of two users. UserA < UserB always holds
// (see CanonicalPair); the composite unique index is what makes concurrent
// first-contact sends collapse into a single row.
type Conversation struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserA     string    `gorm:"column:user_a;size:64;uniqueIndex:idx_conversation_pair;index:idx_conversation_user_a" json:"user_a"`
	UserB     string    `gorm:"column:user_b;size:64;uniqueIndex:idx_conversation_pair;index:idx_conversation_user_b" json:"user_b"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index" json:"updated_at"`
}

// TableName returns the table name for conversations
func (Conversation) TableName() string { return "conversations" }

// CanonicalPair orders two user IDs so that (a,b) and (b,a) map to the same
// pair. Every conversation lookup and creation must go through this.
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// OtherParticipant returns the participant that is not userID
func (c *Conversation) OtherParticipant(userID string) string {
	if c.UserA == userID {
		return c.UserB
	}
	return c.UserA
}

// HasParticipant reports whether userID is one of the two participants
func (c *Conversation) HasParticipant(userID string) bool {
	return c.UserA == userID || c.UserB == userID
}

// ConversationResponse is one entry of the caller's conversation list
type ConversationResponse struct {
	ID          uint64           `json:"id"`
	OtherUser   UserSummary      `json:"other_user"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UnreadCount int64            `json:"unread_count"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
