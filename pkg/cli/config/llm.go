package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

const (
	// DefaultOpenAIModel is the chat model used for intent replies
	DefaultOpenAIModel = "gpt-4"

	llmTemperature = 0.7
	llmMaxTokens   = 150
)

// LLM holds configuration for the OpenAI chat client
type LLM struct {
	apiKey string
	model  string
}

// Flags returns CLI flags for LLM configuration
func (l *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key. Replies degrade to a fixed apology when unset",
			Category:    "LLM",
			Sources:     cli.EnvVars("KAIROS_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &l.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI chat model",
			Value:       DefaultOpenAIModel,
			Category:    "LLM",
			Sources:     cli.EnvVars("KAIROS_OPENAI_MODEL"),
			Destination: &l.model,
		},
	}
}

// LogAttrs returns log attributes for the LLM configuration
func (l *LLM) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("model", l.model),
		slog.Bool("api_key_set", l.apiKey != ""),
	}
}

// Configure creates the OpenAI client from the configured flags.
// Returns nil if the API key is not configured.
func (l *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if l.apiKey == "" {
		return nil, nil
	}

	model := l.model
	if model == "" {
		model = DefaultOpenAIModel
	}

	client, err := openai.New(ctx, l.apiKey,
		openai.WithModel(model),
		openai.WithTemperature(llmTemperature),
		openai.WithMaxTokens(llmMaxTokens),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client", goerr.V("model", model))
	}

	return client, nil
}
