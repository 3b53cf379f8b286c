package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/kairos/pkg/domain/types"
)

// ConversationID is a UUID-based identifier for Conversation
type ConversationID string

// NewConversationID generates a new UUID v4 ConversationID
func NewConversationID() ConversationID {
	return ConversationID(uuid.New().String())
}

// Conversation is one logged utterance with the intent derived from it.
// Records are append-only.
type Conversation struct {
	ID        ConversationID `json:"-"`
	UserID    *string        `json:"userId"` // nil when the caller sent no userId
	Text      string         `json:"text"`
	Intent    types.Intent   `json:"intent"`
	Timestamp time.Time      `json:"timestamp"`
}

// VoiceInput is the body of a process-voice request
type VoiceInput struct {
	Text   string  `json:"text" validate:"required"`
	UserID *string `json:"userId"`
}

// CopyUserID returns a copy of the user ID. A missing userId stays nil and an
// empty one stays empty.
func (v *VoiceInput) CopyUserID() *string {
	if v.UserID == nil {
		return nil
	}
	userID := *v.UserID
	return &userID
}
