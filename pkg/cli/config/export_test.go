package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, databaseID, collectionPrefix string) *Repository {
	return &Repository{
		backend:          backend,
		projectID:        projectID,
		databaseID:       databaseID,
		collectionPrefix: collectionPrefix,
	}
}

// NewLLMForTest creates an LLM config for testing purposes
func NewLLMForTest(apiKey, model string) *LLM {
	return &LLM{
		apiKey: apiKey,
		model:  model,
	}
}

// NewWorkflowForTest creates a Workflow config for testing purposes
func NewWorkflowForTest(webhookURL string) *Workflow {
	return &Workflow{
		webhookURL: webhookURL,
	}
}

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{
		dsn: dsn,
		env: env,
	}
}
