package classifier

import (
	"context"

	"github.com/secmon-lab/kairos/pkg/domain/model"
)

// Service classifies an utterance into an intent and a model reply
type Service interface {
	// Classify never fails. When the language model cannot be reached the
	// degraded classification is returned.
	Classify(ctx context.Context, text string) *model.Classification
}
