package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/cli/config"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/service/workflow"
	"github.com/urfave/cli/v3"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

type probeOptions struct {
	workflowCfg config.Workflow
	fixturePath string
	interval    time.Duration
}

func (o *probeOptions) flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "fixture",
			Usage:       "TOML file with probe payloads (built-in payloads when omitted)",
			Sources:     cli.EnvVars("KAIROS_PROBE_FIXTURE"),
			Destination: &o.fixturePath,
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Wait between requests",
			Value:       time.Second,
			Destination: &o.interval,
		},
	}
	return append(flags, o.workflowCfg.Flags()...)
}

func (o *probeOptions) fixtures() (*config.ProbeFixtures, error) {
	if o.fixturePath == "" {
		return config.DefaultProbeFixtures(), nil
	}
	return config.LoadProbeFixtures(o.fixturePath)
}

func cmdProbe() *cli.Command {
	var opts probeOptions

	return &cli.Command{
		Name:  "probe",
		Usage: "Send synthetic payloads to the workflow webhooks",
		Commands: []*cli.Command{
			{
				Name:  "intent",
				Usage: "Send booking, cancel and reschedule payloads to the voice agent webhook",
				Flags: opts.flags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					url := opts.workflowCfg.WebhookURL()
					if url == "" {
						return goerr.Wrap(config.ErrMissingWebhookURL, "probe requires --n8n-webhook-url")
					}
					fixtures, err := opts.fixtures()
					if err != nil {
						return err
					}
					return runProbe(ctx, c.Root().Writer, workflow.New(url), url, "intent", fixtures.IntentPayloads(), opts.interval)
				},
			},
			{
				Name:  "notification",
				Usage: "Send appointment notification payloads to the notification webhook",
				Flags: opts.flags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					if opts.workflowCfg.WebhookURL() == "" {
						return goerr.Wrap(config.ErrMissingWebhookURL, "probe requires --n8n-webhook-url")
					}
					url := opts.workflowCfg.NotificationURL()
					fixtures, err := opts.fixtures()
					if err != nil {
						return err
					}
					return runProbe(ctx, c.Root().Writer, workflow.New(url), url, "type", fixtures.NotificationPayloads(time.Now()), opts.interval)
				},
			},
		},
	}
}

// runProbe posts each payload in order and prints the outcome. Delivery
// failures are reported but do not stop the run.
func runProbe(ctx context.Context, w io.Writer, svc workflow.Service, url, labelKey string, payloads []model.WorkflowPayload, interval time.Duration) error {
	_, _ = fmt.Fprintf(w, "Using webhook URL: %s\n", url)

	for i, payload := range payloads {
		if i > 0 && interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}

		_, _ = headerColor.Fprintf(w, "\nTesting %v...\n", payload[labelKey])
		body, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return goerr.Wrap(err, "failed to marshal probe payload")
		}
		_, _ = fmt.Fprintf(w, "Sending data: %s\n", body)

		result := svc.Dispatch(ctx, payload)
		printDispatchResult(w, result)
	}

	_, _ = successColor.Fprintln(w, "\nAll probes completed!")
	return nil
}

func printDispatchResult(w io.Writer, result *model.DispatchResult) {
	if result.StatusCode != 0 {
		_, _ = fmt.Fprintf(w, "Status code: %d\n", result.StatusCode)
	}

	switch {
	case result.Delivered:
		resp, err := json.MarshalIndent(result.Response, "", "  ")
		if err != nil {
			_, _ = successColor.Fprintf(w, "Response: %v\n", result.Response)
			return
		}
		_, _ = successColor.Fprintf(w, "Response: %s\n", resp)
	case result.Failure == model.DispatchFailureBadStatus:
		_, _ = failureColor.Fprintf(w, "Error response: %s\n", result.Body)
	default:
		_, _ = failureColor.Fprintf(w, "Error (%s): %v\n", result.Failure, result.Err)
	}
}
