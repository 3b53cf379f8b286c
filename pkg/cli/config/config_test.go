package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/kairos/pkg/cli/config"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/utils/logging"
)

func TestLogger_Configure(t *testing.T) {
	orig := logging.Default()
	t.Cleanup(func() { logging.SetDefault(orig) })

	t.Run("writes JSON to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kairos.log")
		cfg := config.NewLoggerForTest("debug", "json", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		logging.Default().Debug("probe", "user_id", "u1")
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains(`"user_id":"u1"`)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		cfg := config.NewLoggerForTest("verbose", "console", "stdout")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})
}

func TestRepository_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory", "", "", "")
		repo, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore backend requires project ID", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("firestore", "", "", "")
		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("mongodb", "", "", "")
		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("returns flags", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("", "", "", "")
		gt.Value(t, len(cfg.Flags())).Equal(4)
	})
}

func TestLLM_Configure(t *testing.T) {
	t.Run("returns nil client when API key is empty", func(t *testing.T) {
		cfg := config.NewLLMForTest("", "gpt-4")
		client, err := cfg.Configure(t.Context())
		gt.NoError(t, err)
		gt.Value(t, client).Nil()
	})

	t.Run("returns flags", func(t *testing.T) {
		cfg := config.NewLLMForTest("", "")
		gt.Value(t, len(cfg.Flags())).Equal(2)
	})
}

func TestWorkflow(t *testing.T) {
	t.Run("notification URL replaces voice agent path", func(t *testing.T) {
		cfg := config.NewWorkflowForTest("https://n8n.example.com/webhook/voice-agent")
		gt.Value(t, cfg.NotificationURL()).Equal("https://n8n.example.com/webhook/appointment-notification")
	})

	t.Run("URL without voice agent path is unchanged", func(t *testing.T) {
		gt.Value(t, config.NotificationURL("https://n8n.example.com/webhook/other")).
			Equal("https://n8n.example.com/webhook/other")
	})

	t.Run("unset webhook yields not configured dispatch", func(t *testing.T) {
		svc := config.NewWorkflowForTest("").Configure()
		result := svc.Dispatch(t.Context(), model.WorkflowPayload{"intent": "booking"})
		gt.Bool(t, result.Delivered).False()
		gt.Value(t, result.Failure).Equal(model.DispatchFailureNotConfigured)
	})

	t.Run("configured webhook receives payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		svc := config.NewWorkflowForTest(srv.URL).Configure()
		result := svc.Dispatch(t.Context(), model.WorkflowPayload{"intent": "booking"})
		gt.Bool(t, result.Delivered).True()
	})
}

func TestSentry_Configure(t *testing.T) {
	t.Run("disabled without DSN", func(t *testing.T) {
		cfg := config.NewSentryForTest("", "")
		gt.Bool(t, cfg.IsEnabled()).False()

		flush, err := cfg.Configure("dev")
		gt.NoError(t, err).Required()
		flush()
	})

	t.Run("invalid DSN is rejected", func(t *testing.T) {
		cfg := config.NewSentryForTest("not a dsn", "test")
		_, err := cfg.Configure("dev")
		gt.Error(t, err)
	})
}
