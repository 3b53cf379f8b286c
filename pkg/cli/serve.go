package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/cli/config"
	httpctrl "github.com/secmon-lab/kairos/pkg/controller/http"
	"github.com/secmon-lab/kairos/pkg/service/classifier"
	"github.com/secmon-lab/kairos/pkg/usecase"
	"github.com/secmon-lab/kairos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(version string) *cli.Command {
	var addr string
	var repoCfg config.Repository
	var llmCfg config.LLM
	var workflowCfg config.Workflow
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8000",
			Sources:     cli.EnvVars("KAIROS_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, workflowCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure sentry")
			}
			defer flush()

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient == nil {
				logging.Default().Warn("OpenAI API key not configured, replies will be degraded")
			}

			if workflowCfg.WebhookURL() == "" {
				logging.Default().Warn("Workflow webhook URL not configured, dispatch is disabled")
			}

			uc := usecase.New(repo,
				usecase.WithClassifier(classifier.New(llmClient)),
				usecase.WithWorkflow(workflowCfg.Configure()),
			)

			var handler http.Handler = httpctrl.New(uc.Voice, uc.Appointment)
			if sentryCfg.IsEnabled() {
				handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					attrGroup("repository", repoCfg.LogAttrs()),
					attrGroup("llm", llmCfg.LogAttrs()),
					attrGroup("workflow", workflowCfg.LogAttrs()),
				)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}

func attrGroup(key string, attrs []slog.Attr) slog.Attr {
	return slog.Attr{Key: key, Value: slog.GroupValue(attrs...)}
}
