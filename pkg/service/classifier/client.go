package classifier

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/domain/types"
	"github.com/secmon-lab/kairos/pkg/utils/logging"
)

// SystemPrompt is sent with every utterance
const SystemPrompt = "You are an AI assistant helping with appointment scheduling."

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// New creates a classifier backed by llmClient. A nil llmClient is allowed;
// every classification then degrades.
func New(llmClient gollem.LLMClient) Service {
	return &client{
		llmClient: llmClient,
	}
}

// Classify asks the model for a reply and derives the intent from the input
// text. The model reply does not influence the intent.
func (c *client) Classify(ctx context.Context, text string) *model.Classification {
	reply, err := c.generate(ctx, text)
	if err != nil {
		logging.From(ctx).Error("Error processing with LLM", "error", err)
		return model.NewDegradedClassification()
	}

	return &model.Classification{
		Intent:     types.IntentFromText(text),
		Response:   reply,
		Confidence: model.ClassificationConfidence,
	}
}

func (c *client) generate(ctx context.Context, text string) (string, error) {
	if c.llmClient == nil {
		return "", goerr.New("LLM client is not configured")
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(SystemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(text))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content from LLM")
	}

	if resp == nil || len(resp.Texts) == 0 {
		return "", goerr.New("empty response from LLM")
	}

	return strings.Join(resp.Texts, "\n"), nil
}
