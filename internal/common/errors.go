package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Conversation errors
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a conversation participant")

	// Message errors
	ErrMessageNotFound = errors.New("message not found")
	ErrSelfMessage     = errors.New("cannot send a message to yourself")
	ErrEmptyMessage    = errors.New("message requires content or media")
	ErrBadMediaType    = errors.New("media type must be image or video")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("expired token")
	ErrInvalidCursor = errors.New("invalid cursor")
)
