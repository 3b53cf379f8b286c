package interfaces

import (
	"context"

	"github.com/secmon-lab/kairos/pkg/domain/model"
)

// ConversationRepository defines the interface for Conversation persistence
type ConversationRepository interface {
	// Create stores a conversation record. ID is generated when empty.
	Create(ctx context.Context, conv *model.Conversation) error
}
