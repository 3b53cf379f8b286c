package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/utils/logging"
	"github.com/secmon-lab/kairos/pkg/utils/safe"
)

// DefaultTimeout caps every webhook call
const DefaultTimeout = 10 * time.Second

// client implements Service interface
type client struct {
	webhookURL string
	httpClient *http.Client
}

type options struct {
	timeout    time.Duration
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*options)

// WithTimeout overrides DefaultTimeout
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets the base HTTP client. Its Timeout is replaced by
// WithTimeout or DefaultTimeout. The client is copied, so the
// caller's instance is never modified.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// New creates a dispatcher posting to webhookURL. An empty URL is allowed;
// Dispatch then returns a not_configured result without any request.
// Redirects are never followed, so a 3xx answer is a bad_status failure.
func New(webhookURL string, opts ...Option) Service {
	o := &options{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	var httpClient http.Client
	if o.httpClient != nil {
		httpClient = *o.httpClient
	}
	httpClient.Timeout = o.timeout
	httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &client{
		webhookURL: webhookURL,
		httpClient: &httpClient,
	}
}

func (c *client) Dispatch(ctx context.Context, payload model.WorkflowPayload) *model.DispatchResult {
	logger := logging.From(ctx)

	if c.webhookURL == "" {
		logger.Warn("workflow webhook URL is not configured, skip dispatch")
		return model.NewDispatchFailure(model.DispatchFailureNotConfigured, nil)
	}

	logger.Info("Triggering workflow", "url", c.webhookURL, "payload", payload)

	body, err := json.Marshal(payload)
	if err != nil {
		err = goerr.Wrap(err, "failed to marshal workflow payload")
		logger.Error("Error triggering workflow", "error", err)
		return model.NewDispatchFailure(model.DispatchFailureTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		err = goerr.Wrap(err, "failed to build workflow request", goerr.V("url", c.webhookURL))
		logger.Error("Error triggering workflow", "error", err)
		return model.NewDispatchFailure(model.DispatchFailureTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			err = goerr.Wrap(err, "workflow webhook timed out", goerr.V("url", c.webhookURL))
			logger.Error("Timeout while triggering workflow", "url", c.webhookURL, "timeout", c.httpClient.Timeout)
			return model.NewDispatchFailure(model.DispatchFailureTimeout, err)
		}
		err = goerr.Wrap(err, "failed to send workflow request", goerr.V("url", c.webhookURL))
		logger.Error("Error triggering workflow", "error", err)
		return model.NewDispatchFailure(model.DispatchFailureTransport, err)
	}
	defer safe.Close(ctx, resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			err = goerr.Wrap(err, "workflow webhook timed out", goerr.V("url", c.webhookURL))
			logger.Error("Timeout while triggering workflow", "url", c.webhookURL, "timeout", c.httpClient.Timeout)
			return model.NewDispatchFailure(model.DispatchFailureTimeout, err)
		}
		err = goerr.Wrap(err, "failed to read workflow response", goerr.V("url", c.webhookURL))
		logger.Error("Error triggering workflow", "error", err)
		return model.NewDispatchFailure(model.DispatchFailureTransport, err)
	}

	result := &model.DispatchResult{
		StatusCode: resp.StatusCode,
		Body:       string(raw),
	}

	if resp.StatusCode != http.StatusOK {
		result.Failure = model.DispatchFailureBadStatus
		result.Err = goerr.New("workflow webhook returned non-200 status",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", c.webhookURL))
		logger.Error("Workflow webhook returned non-200 status code",
			"status", resp.StatusCode,
			"body", result.Body)
		return result
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		result.Failure = model.DispatchFailureDecode
		result.Err = goerr.Wrap(err, "failed to decode workflow response", goerr.V("body", result.Body))
		logger.Error("Error triggering workflow", "error", result.Err)
		return result
	}

	result.Delivered = true
	result.Response = decoded
	logger.Info("Workflow triggered successfully", "status", resp.StatusCode)
	return result
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
