package config

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

// Sentry holds configuration for error reporting
type Sentry struct {
	dsn string
	env string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			Category:    "Sentry",
			Sources:     cli.EnvVars("KAIROS_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Sources:     cli.EnvVars("KAIROS_SENTRY_ENV"),
			Destination: &s.env,
		},
	}
}

// IsEnabled reports whether a DSN is configured
func (s *Sentry) IsEnabled() bool {
	return s.dsn != ""
}

// Configure initializes the global Sentry client. The returned function
// flushes buffered events. Without a DSN nothing is initialized.
func (s *Sentry) Configure(release string) (func(), error) {
	if s.dsn == "" {
		logging.Default().Info("Sentry DSN not configured, error reporting disabled")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.env,
		Release:     release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry", goerr.V("env", s.env))
	}

	logging.Default().Info("Sentry enabled", "env", s.env)
	return func() {
		sentry.Flush(sentryFlushTimeout)
	}, nil
}
