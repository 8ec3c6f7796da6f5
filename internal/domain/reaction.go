package domain

import "time"

// MessageReaction is a user's single emoji on a message. The composite unique
// index enforces at most one row per (message, user); a new emoji overwrites.
// Emoji values are stored verbatim with no allow-list.
type MessageReaction struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MessageID uint64    `gorm:"column:message_id;uniqueIndex:idx_reaction_message_user" json:"message_id"`
	UserID    string    `gorm:"column:user_id;size:64;uniqueIndex:idx_reaction_message_user" json:"user_id"`
	Emoji     string    `gorm:"column:emoji;size:64" json:"emoji"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for message reactions
func (MessageReaction) TableName() string { return "message_reactions" }

// SetReactionRequest is the POST /messages/react body
type SetReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

// ReactionResponse is an upserted reaction joined with the reacting user
type ReactionResponse struct {
	ID        uint64      `json:"id"`
	MessageID uint64      `json:"message_id"`
	User      UserSummary `json:"user"`
	Emoji     string      `json:"emoji"`
	CreatedAt time.Time   `json:"created_at"`
}

// ToResponse converts a MessageReaction plus its user summary to the API shape
func (r *MessageReaction) ToResponse(user UserSummary) *ReactionResponse {
	return &ReactionResponse{
		ID:        r.ID,
		MessageID: r.MessageID,
		User:      user,
		Emoji:     r.Emoji,
		CreatedAt: r.CreatedAt,
	}
}

// ReactionGroup is the display aggregate for one emoji on one message
type ReactionGroup struct {
	Emoji string        `json:"emoji"`
	Count int           `json:"count"`
	Users []UserSummary `json:"users"`
}

// GroupReactionsByEmoji groups a message's reactions by emoji value, keeping
// first-seen emoji order and per-emoji reaction order. Read-side only.
func GroupReactionsByEmoji(reactions []MessageReaction, users map[string]UserSummary) []ReactionGroup {
	if len(reactions) == 0 {
		return nil
	}

	index := make(map[string]int, len(reactions))
	groups := make([]ReactionGroup, 0, len(reactions))
	for _, r := range reactions {
		i, ok := index[r.Emoji]
		if !ok {
			i = len(groups)
			index[r.Emoji] = i
			groups = append(groups, ReactionGroup{Emoji: r.Emoji})
		}
		groups[i].Count++
		user, ok := users[r.UserID]
		if !ok {
			user = UserSummary{ID: r.UserID}
		}
		groups[i].Users = append(groups[i].Users, user)
	}
	return groups
}
