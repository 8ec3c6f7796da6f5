package domain

import "time"

// Media type values accepted on messages
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Message is one entry of a conversation's append-only log. Immutable after
// creation except for the read flag, which only ever flips false→true.
type Message struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ConversationID uint64    `gorm:"column:conversation_id;index:idx_message_conversation" json:"conversation_id"`
	SenderID       string    `gorm:"column:sender_id;size:64;index" json:"sender_id"`
	ReceiverID     string    `gorm:"column:receiver_id;size:64;index" json:"receiver_id"`
	Content        string    `gorm:"column:content;type:text" json:"content,omitempty"`
	MediaURL       string    `gorm:"column:media_url;size:500" json:"media_url,omitempty"`
	MediaType      string    `gorm:"column:media_type;size:10" json:"media_type,omitempty"`
	Read           bool      `gorm:"column:is_read;default:false" json:"read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;index:idx_message_conversation" json:"created_at"`
}

// TableName returns the table name for messages
func (Message) TableName() string { return "messages" }

// SendMessageRequest is the POST /messages/send body
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content"`
	MediaURL   string `json:"media_url"`
	MediaType  string `json:"media_type"`
}

// MessageResponse is a message joined with its sender summary
type MessageResponse struct {
	ID             uint64          `json:"id"`
	ConversationID uint64          `json:"conversation_id"`
	Sender         UserSummary     `json:"sender"`
	ReceiverID     string          `json:"receiver_id"`
	Content        string          `json:"content,omitempty"`
	MediaURL       string          `json:"media_url,omitempty"`
	MediaType      string          `json:"media_type,omitempty"`
	Read           bool            `json:"read"`
	Reactions      []ReactionGroup `json:"reactions,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToResponse converts a Message plus its sender summary to the API shape
func (m *Message) ToResponse(sender UserSummary) *MessageResponse {
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         sender,
		ReceiverID:     m.ReceiverID,
		Content:        m.Content,
		MediaURL:       m.MediaURL,
		MediaType:      m.MediaType,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}
