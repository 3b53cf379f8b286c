package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/model"
)

type conversationRepository struct {
	mu      sync.RWMutex
	entries []*model.Conversation
	ids     map[model.ConversationID]struct{}
}

func newConversationRepository() *conversationRepository {
	return &conversationRepository{
		ids: make(map[model.ConversationID]struct{}),
	}
}

func copyConversation(c *model.Conversation) *model.Conversation {
	copied := *c
	if c.UserID != nil {
		userID := *c.UserID
		copied.UserID = &userID
	}
	return &copied
}

func (r *conversationRepository) Create(ctx context.Context, conv *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyConversation(conv)
	if created.ID == "" {
		created.ID = model.NewConversationID()
	}
	if _, exists := r.ids[created.ID]; exists {
		return goerr.Wrap(model.ErrDuplicateID, "conversation ID already exists", goerr.V("id", created.ID))
	}

	r.ids[created.ID] = struct{}{}
	r.entries = append(r.entries, created)
	return nil
}

func (r *conversationRepository) all() []*model.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Conversation, 0, len(r.entries))
	for _, c := range r.entries {
		result = append(result, copyConversation(c))
	}
	return result
}
