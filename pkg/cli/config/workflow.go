package config

import (
	"log/slog"
	"strings"

	"github.com/secmon-lab/kairos/pkg/service/workflow"
	"github.com/urfave/cli/v3"
)

const (
	voiceAgentPath   = "voice-agent"
	notificationPath = "appointment-notification"
)

// Workflow holds the automation webhook configuration
type Workflow struct {
	webhookURL string
}

// Flags returns CLI flags for workflow configuration
func (w *Workflow) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "n8n-webhook-url",
			Usage:       "Workflow webhook URL. Dispatch is skipped when unset",
			Category:    "Workflow",
			Sources:     cli.EnvVars("KAIROS_N8N_WEBHOOK_URL", "N8N_WEBHOOK_URL"),
			Destination: &w.webhookURL,
		},
	}
}

// WebhookURL returns the configured webhook URL
func (w *Workflow) WebhookURL() string {
	return w.webhookURL
}

// NotificationURL returns the appointment notification webhook that sits next
// to the voice agent webhook
func (w *Workflow) NotificationURL() string {
	return NotificationURL(w.webhookURL)
}

// NotificationURL replaces the voice agent path segment with the notification one
func NotificationURL(webhookURL string) string {
	return strings.ReplaceAll(webhookURL, voiceAgentPath, notificationPath)
}

// LogAttrs returns log attributes for the workflow configuration
func (w *Workflow) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("webhook_configured", w.webhookURL != ""),
	}
}

// Configure returns the dispatcher for the configured webhook
func (w *Workflow) Configure(opts ...workflow.Option) workflow.Service {
	return workflow.New(w.webhookURL, opts...)
}
