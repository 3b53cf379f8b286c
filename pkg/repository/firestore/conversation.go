package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CollectionConversations is the base name of the conversation log collection
const CollectionConversations = "conversations"

// conversationDoc is the Firestore document representation of model.Conversation.
type conversationDoc struct {
	ID        string    `firestore:"ID"`
	UserID    *string   `firestore:"UserID"`
	Text      string    `firestore:"Text"`
	Intent    string    `firestore:"Intent"`
	Timestamp time.Time `firestore:"Timestamp"`
}

func toConversationDoc(c *model.Conversation) *conversationDoc {
	return &conversationDoc{
		ID:        string(c.ID),
		UserID:    c.UserID,
		Text:      c.Text,
		Intent:    c.Intent.String(),
		Timestamp: c.Timestamp,
	}
}

type conversationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newConversationRepository(client *firestore.Client) *conversationRepository {
	return &conversationRepository{client: client}
}

func (r *conversationRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionName(r.collectionPrefix, CollectionConversations))
}

func (r *conversationRepository) Create(ctx context.Context, conv *model.Conversation) error {
	doc := toConversationDoc(conv)
	if doc.ID == "" {
		doc.ID = string(model.NewConversationID())
	}

	if _, err := r.collection().Doc(doc.ID).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(model.ErrDuplicateID, "conversation ID already exists",
				goerr.V("id", doc.ID), goerr.V("cause", err.Error()))
		}
		return goerr.Wrap(err, "failed to insert conversation", goerr.V("id", doc.ID))
	}
	return nil
}
