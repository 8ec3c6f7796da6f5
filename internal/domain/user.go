package domain

import "time"

// User is a BlaBla account as this service sees it. Accounts are created and
// mutated by the main application; here they only back existence checks and
// summary fields on messaging payloads.
type User struct {
	ID        string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	Nickname  string    `gorm:"column:nickname;size:100" json:"nickname"`
	AvatarURL string    `gorm:"column:avatar_url;size:500" json:"avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for users
func (User) TableName() string { return "users" }

// UserSummary is the embedded user shape on conversation/message payloads
type UserSummary struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ToSummary converts a User to its summary shape
func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Nickname:  u.Nickname,
		AvatarURL: u.AvatarURL,
	}
}
